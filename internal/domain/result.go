package domain

// ResultState enumerates the lifecycle of a single generation as seen by the page.
type ResultState string

const (
	ResultIdle    ResultState = "idle"
	ResultPending ResultState = "pending"
	ResultSuccess ResultState = "success"
	ResultError   ResultState = "error"
)

// GenerationResult is the transient outcome of one submission. It is in exactly
// one state at a time; ImageURL is only set on success and Message only on error.
type GenerationResult struct {
	State    ResultState
	ImageURL string
	Message  string
}

func Idle() GenerationResult { return GenerationResult{State: ResultIdle} }

func Succeeded(url string) GenerationResult {
	return GenerationResult{State: ResultSuccess, ImageURL: url}
}

func Failed(message string) GenerationResult {
	return GenerationResult{State: ResultError, Message: message}
}

func (r GenerationResult) IsPending() bool { return r.State == ResultPending }
func (r GenerationResult) HasImage() bool  { return r.State == ResultSuccess && r.ImageURL != "" }
func (r GenerationResult) HasError() bool  { return r.State == ResultError }
