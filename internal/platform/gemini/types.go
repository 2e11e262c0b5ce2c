// Package gemini implements the grading boundary using Google's Gemini API.
package gemini

// promptData is the data passed to the prompt template.
type promptData struct {
	Word              string
	DefinitionContext string
	UserSentence      string
}

// responseSchema is the expected JSON structure of a grading response.
type responseSchema struct {
	// CorrectedSentence is the user's sentence with errors fixed.
	CorrectedSentence string `json:"corrected_sentence"`

	// BetterVersion is a more natural phrasing using the target word.
	BetterVersion string `json:"better_version"`

	// Feedback is the explanatory text shown to the user.
	Feedback string `json:"feedback"`

	// Verdict is the grading category; "fully correct" means no issues.
	Verdict string `json:"verdict"`
}

// defaultPromptTemplate is the built-in grading prompt. A deployment can
// replace it via llm.prompt_template_path; the template receives
// .Word, .DefinitionContext and .UserSentence.
const defaultPromptTemplate = `You are an English writing tutor. A learner is practicing the word "{{.Word}}".
{{if .DefinitionContext}}
Reference material for the word:
{{.DefinitionContext}}
{{else}}
The word is not in the learner's vocabulary list; check grammar and word usage generally.
{{end}}
The learner wrote this sentence:
"{{.UserSentence}}"

Evaluate whether the sentence uses the word correctly and is grammatically sound.
Respond with JSON only, using exactly these fields:
{
  "corrected_sentence": "the learner's sentence with any errors fixed",
  "better_version": "a more natural or expressive sentence using the word",
  "feedback": "a short explanation of what was right or wrong",
  "verdict": "fully correct" or a short phrase describing what needs improvement
}`
