package web

import "visionai/internal/domain"

const (
	IndexPage = "index.html"

	MsgEnterPrompt = "Please enter a prompt"
	MsgTryAgain    = "Failed to generate image. Please try again."
)

// Notification is the toast shown above the form.
type Notification struct {
	Title       string
	Description string
	Destructive bool
}

// PageView is everything the index template needs.
type PageView struct {
	Title        string
	Prompt       string
	Result       domain.GenerationResult
	Notification *Notification
}

func NewPageView(prompt string, result domain.GenerationResult) PageView {
	view := PageView{
		Title:  AppTitle,
		Prompt: prompt,
		Result: result,
	}
	if result.HasError() {
		view.Notification = &Notification{
			Title:       "Error",
			Description: result.Message,
			Destructive: true,
		}
	}
	return view
}
