package server

import "codearch/internal/gemini"

// AnalyzeRequest asks for a full analysis of one public repository.
type AnalyzeRequest struct {
	Repo string `json:"repo" binding:"required"`
}

// ChatRequest asks a follow-up question about an analyzed repository.
type ChatRequest struct {
	Repo     string               `json:"repo" binding:"required"`
	Question string               `json:"question" binding:"required"`
	History  []gemini.ChatMessage `json:"history"`
}

// ChatResponse carries the assistant's answer.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
