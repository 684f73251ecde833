package models

import "encoding/json"

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage is the payload of quiz:error
type WSErrorMessage struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// WSJoinRequest is the payload of quiz:join
type WSJoinRequest struct {
	QuizID string `json:"quizId"`
}

// WSLifelineRequest is the payload of quiz:lifeline
type WSLifelineRequest struct {
	SessionID string `json:"sessionId"`
}
