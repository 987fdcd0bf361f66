package api

import (
	"encoding/json"
)

// decode unmarshals a response body into T. The json tags on the models
// are the rename tables; unknown fields are ignored and absent ones stay nil.
func decode[T any](data []byte, what string) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, &DecodeError{What: what, Err: err}
	}
	return v, nil
}

// decodeReply turns a successful body into a reply, applying the domain
// error policy: empty bodies are FailedToRead, decode failures are
// wrapped as Unknown.
func decodeReply[T any](body []byte, what string) (*T, error) {
	if len(body) == 0 {
		return nil, &GeneralError{Kind: GenFailedToRead}
	}
	v, err := decode[T](body, what)
	if err != nil {
		return nil, &GeneralError{Kind: GenUnknown, Err: err}
	}
	return &v, nil
}
