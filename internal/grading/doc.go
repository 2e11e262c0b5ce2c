// Package grading provides the interface and error taxonomy for grading
// user sentences with an external language model. It abstracts the details
// of the LLM API integration (Gemini), allowing the practice service to
// grade sentences without coupling to a specific provider.
package grading
