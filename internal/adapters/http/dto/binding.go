package dto

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// ErrBinding indicates the request body or path could not be bound.
var ErrBinding = errors.New("binding failed")

// BindJSON binds the JSON body to v. Quote bodies carry no field rules;
// storage enforces the column policy.
func BindJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return nil
}

// BindURI binds path parameters, e.g. a non-integer :id fails here.
func BindURI(c *gin.Context, v any) error {
	if err := c.ShouldBindUri(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return nil
}
