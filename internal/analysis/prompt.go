package analysis

import "fmt"

const analysisSystemPrompt = `You are an expert exam analyst. You extract and classify exam questions from documents. You always respond with a single valid JSON object and nothing else.`

const analysisPromptTemplate = `Analyze the following exam text chunk and extract every exam question it contains.
The full document is expected to contain about %d questions in total; this chunk may hold any subset of them.

For each question found, report:
- "question_id": a short identifier unique within this chunk (e.g. "q1")
- "question_text": the complete question text, including any answer options
- "question_type": one of "multiple_choice", "true_false", "short_answer", "essay", "fill_in_blank"
- "topic": the subject area of the question
- "difficulty": one of "easy", "medium", "hard"
- "confidence_score": how confident you are this is a real exam question, 0.0 to 1.0
- "answer_choices": the list of answer options if present, otherwise an empty list
- "keywords": up to five key terms from the question
- "is_valid_question": false if the text is instructions, headers or other non-question material

Do not invent questions. Only extract text that is actually present in the chunk.
Ignore administrative material such as instructions, name fields, page numbers and section headers.

Respond with exactly this JSON structure:
{"questions": [...], "chunk_summary": "one sentence describing this chunk"}

Text chunk:
%s`

func buildAnalysisPrompt(chunkText string, expectedCount int) string {
	return fmt.Sprintf(analysisPromptTemplate, expectedCount, chunkText)
}
