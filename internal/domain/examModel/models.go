package examModel

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	ShortAnswer    QuestionType = "short_answer"
	Essay          QuestionType = "essay"
	FillInBlank    QuestionType = "fill_in_blank"
	Unknown        QuestionType = "unknown"
)

type DetectionMethod string

const (
	MethodLLM       DetectionMethod = "llm"
	MethodRecovery  DetectionMethod = "deterministic_recovery"
	MethodHeuristic DetectionMethod = "fallback_heuristic"
)

// CandidateQuestion is never mutated after creation except default backfill
// for fields the upstream model omitted.
type CandidateQuestion struct {
	Id            string          `json:"question_id"`
	Text          string          `json:"question_text"`
	Type          QuestionType    `json:"question_type"`
	Topic         string          `json:"topic"`
	Difficulty    string          `json:"difficulty"`
	Confidence    float64         `json:"confidence_score"`
	AnswerChoices []string        `json:"answer_choices,omitempty"`
	Keywords      []string        `json:"keywords,omitempty"`
	Method        DetectionMethod `json:"detection_method"`
	SourceChunk   int             `json:"source_chunk"`
	Number        int             `json:"question_number,omitempty"`
}

// NumberedRecord is one hit of the deterministic numbered-line scan. Records
// are emitted in document order, never sorted by number.
type NumberedRecord struct {
	Number    int    `json:"number"`
	Text      string `json:"text"`
	StartLine int    `json:"line_start"`
	EndLine   int    `json:"line_end"`
}

type Topic struct {
	Id            string   `json:"topic_id"`
	Name          string   `json:"topic_name"`
	QuestionCount int      `json:"question_count"`
	Keywords      []string `json:"keywords"`
	Confidence    float64  `json:"confidence_score"`
}

type Cluster struct {
	Id        string   `json:"cluster_id"`
	Questions []string `json:"questions"`
	Size      int      `json:"size"`
}

type Summary struct {
	TotalQuestions   int      `json:"total_questions"`
	TopicsFound      int      `json:"topics_found"`
	QuestionTypes    []string `json:"question_types,omitempty"`
	ChunksProcessed  int      `json:"chunks_processed"`
	FailedChunks     int      `json:"failed_chunks"`
	ProcessingMethod string   `json:"processing_method"`
	Success          bool     `json:"processing_success"`
}

// CoverageReport compares final output against the expected question-number
// range for observability. It never affects what is returned.
type CoverageReport struct {
	Expected []int   `json:"expected"`
	Found    []int   `json:"found"`
	Missing  []int   `json:"missing"`
	Extra    []int   `json:"extra"`
	Ratio    float64 `json:"ratio"`
}

type AnalysisResult struct {
	Questions []CandidateQuestion `json:"questions"`
	Topics    []Topic             `json:"topics"`
	Clusters  []Cluster           `json:"clusters"`
	Summary   Summary             `json:"summary"`
	Coverage  CoverageReport      `json:"coverage"`
}

// TranslationResult invariant: CleanGuaranteed is only set once every
// character of TranslatedText passed the sanitizer allow-list.
type TranslationResult struct {
	TranslatedText   string `json:"translated_text"`
	OriginalChunks   int    `json:"original_chunks"`
	TranslatedChunks int    `json:"translated_chunks"`
	Success          bool   `json:"success"`
	HasHebrew        bool   `json:"has_hebrew"`
	CleanGuaranteed  bool   `json:"clean_guaranteed"`
	Message          string `json:"message,omitempty"`
}
