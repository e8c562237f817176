package http

import (
	"net/http"

	"news-insight/internal/handler/http/respond"
)

// WelcomeMessage is returned by GET /.
const WelcomeMessage = "Welcome to the News Summarizer & Sentiment Analysis API"

// WelcomeResponse is the body of GET /.
type WelcomeResponse struct {
	Message string `json:"message" example:"Welcome to the News Summarizer & Sentiment Analysis API"`
}

// RootHandler serves the welcome message.
// @Summary      Welcome message
// @Tags         meta
// @Produce      json
// @Success      200 {object} WelcomeResponse
// @Router       / [get]
func RootHandler(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, WelcomeResponse{Message: WelcomeMessage})
}
