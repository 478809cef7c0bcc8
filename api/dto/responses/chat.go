package responses

// ChatResponse is the body returned by POST /chat
type ChatResponse struct {
	Reply string `json:"reply" doc:"Assistant reply"`
}
