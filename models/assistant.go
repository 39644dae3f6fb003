package models

type AiQuery struct {
	Prompt string `json:"prompt"`
}

type AiResponse struct {
	Response string `json:"response"`
	Model    string `json:"model"`
}
