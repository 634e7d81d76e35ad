package errors

// The API answers with two wire shapes inherited from its contract:
// validation failures aggregate into {errors:[{msg,param}]} and every
// other failure is a bare {msg}.

// FieldError is a single violated rule.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// ErrorList is the {errors:[...]} response body.
type ErrorList struct {
	Errors []FieldError `json:"errors"`
}

// List builds an ErrorList from messages without field context.
func List(msgs ...string) ErrorList {
	out := ErrorList{Errors: make([]FieldError, 0, len(msgs))}
	for _, m := range msgs {
		out.Errors = append(out.Errors, FieldError{Msg: m})
	}
	return out
}

// Message is the {msg} response body.
type Message struct {
	Msg string `json:"msg"`
}

// ServerError is the opaque body for unexpected failures; detail stays in logs.
var ServerError = Message{Msg: "Server Error"}
