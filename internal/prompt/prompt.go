// Package prompt renders the instruction text sent to the generation model.
// Building a prompt is pure string work: no I/O, no failure path.
package prompt

import "fmt"

// Mode selects the summarization style.
type Mode string

const (
	ModeParagraph Mode = "paragraph"
	ModeBullets   Mode = "bullets"
	ModeELI5      Mode = "eli5"
	ModeQuestions Mode = "questions"
	ModeSEO       Mode = "seo"
)

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeParagraph, ModeBullets, ModeELI5, ModeQuestions, ModeSEO:
		return true
	}
	return false
}

// Length selects the requested output size class.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// Valid reports whether l is one of the supported lengths.
func (l Length) Valid() bool {
	switch l {
	case LengthShort, LengthMedium, LengthLong:
		return true
	}
	return false
}

// lengthSpecs maps each length class to the size guidance embedded in the
// prompt. Never mutated.
var lengthSpecs = map[Length]string{
	LengthShort:  "2-3 sentences (50-75 words)",
	LengthMedium: "4-6 sentences (100-150 words)",
	LengthLong:   "7-10 sentences (200-250 words)",
}

const paragraphTemplate = `You are a professional text summarizer with expertise in condensing complex information.

Task: Summarize the following text into a single, coherent paragraph.

Length requirement: %s

Guidelines:
- Maintain the core message and key points
- Use clear, professional language
- Ensure logical flow and coherence
- Do NOT use bullet points or lists
- Write in complete sentences with smooth transitions

Text to summarize:
"""
%s
"""

Provide only the summary paragraph, nothing else.`

const bulletsTemplate = `You are an expert at extracting and organizing key information from text.

Task: Extract the main points from the following text and present them as a clear bullet-point list.

Length requirement: %s (distributed across bullet points)

Guidelines:
- Start each bullet with a dash (-)
- Each point should be concise and self-contained
- Use parallel grammatical structure
- Focus on actionable insights and key facts
- Order points by importance (most important first)

Text to analyze:
"""
%s
"""

Provide only the bullet-point list, nothing else.`

const eli5Template = `You are a patient teacher who explains complex topics to 5-year-old children using simple language and relatable examples.

Task: Explain the following text as if you're talking to a 5-year-old child.

Length requirement: %s

Guidelines:
- Use VERY simple words (avoid jargon completely)
- Use everyday analogies and examples
- Break down complex ideas into small, digestible pieces
- Be warm and encouraging in tone
- Avoid technical terms unless absolutely necessary (and explain them simply)

Text to explain:
"""
%s
"""

Provide only the ELI5 explanation, nothing else.`

// questionsTemplate has no length slot: the mode accepts a length but does
// not use it.
const questionsTemplate = `You are a critical analyst who identifies the core questions that a piece of text addresses.

Task: Analyze the following text and generate 3-5 key questions that this text answers or addresses.

Guidelines:
- Each question should be clear, specific, and insightful
- Questions should capture the main themes and arguments
- Use proper question format (Who/What/Where/When/Why/How)
- Number each question (1., 2., 3., etc.)
- Questions should be standalone (understandable without reading the text)
- Prioritize questions by importance

Text to analyze:
"""
%s
"""

Provide only the numbered list of questions, nothing else.`

// seoTemplate replaces the general length guidance with a fixed character cap.
const seoTemplate = `You are an expert SEO copywriter specializing in meta descriptions for web content.

Task: Create a compelling SEO meta description for the following text.

CRITICAL Requirements:
- Maximum length: 155 characters (STRICT LIMIT)
- Include relevant keywords naturally
- Make it engaging and click-worthy
- Accurately represent the content
- Use active voice
- End with a call-to-action or value proposition when possible

Text to summarize:
"""
%s
"""

Provide ONLY the meta description (150-155 characters max), nothing else. No explanations or additional text.`

// Build renders the instruction for the given text, mode, and length. It is
// total: an unrecognized mode produces the paragraph variant and an
// unrecognized length falls back to the medium guidance.
func Build(text string, mode Mode, length Length) string {
	instruction, ok := lengthSpecs[length]
	if !ok {
		instruction = lengthSpecs[LengthMedium]
	}

	switch mode {
	case ModeBullets:
		return fmt.Sprintf(bulletsTemplate, instruction, text)
	case ModeELI5:
		return fmt.Sprintf(eli5Template, instruction, text)
	case ModeQuestions:
		return fmt.Sprintf(questionsTemplate, text)
	case ModeSEO:
		return fmt.Sprintf(seoTemplate, text)
	default:
		return fmt.Sprintf(paragraphTemplate, instruction, text)
	}
}
