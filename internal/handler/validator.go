package handler

import "github.com/iliyamo/villa-booking/internal/model"

// RequestValidator plugs the model's struct tag rules into echo so
// handlers can call c.Validate on request bodies.
type RequestValidator struct{}

func (RequestValidator) Validate(i any) error { return model.Validate(i) }
