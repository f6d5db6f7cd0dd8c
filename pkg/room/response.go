package room

import (
	"familyhub-server/pkg/playable"
)

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

func newGameResponse(v *View) *playable.Response {
	return &playable.Response{
		Key:  "game",
		Data: v,
	}
}
