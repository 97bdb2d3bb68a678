package handler

import (
	"bytes"
	"encoding/json"

	"github.com/99minutos/storefront-system/internal/core/domain"
)

// --- Request / Response types ---

type registerRequest struct {
	Username        string `json:"username"        form:"username"        validate:"required"`
	Password        string `json:"password"        form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
	Role            string `json:"role"            form:"role"`
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type loginResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	RedirectTo string `json:"redirectTo"`
}

type productRequest struct {
	ID       domain.ProductID `json:"id"       form:"id" validate:"required" swaggertype:"string"`
	Name     string           `json:"name"     form:"name"`
	Price    float64          `json:"price"    form:"price"`
	Category string           `json:"category" form:"category"`
}

func (r productRequest) toDomain() domain.Product {
	return domain.Product{ID: r.ID, Name: r.Name, Price: r.Price, Category: r.Category}
}

type checkoutRequest struct {
	Products productSelection `json:"products" form:"products"`
}

// productSelection is the list of requested product ids. Only string
// elements can ever match a catalog id, so other JSON values are dropped and
// a non-array value selects nothing.
type productSelection []string

func (s *productSelection) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = nil
		return nil
	}

	ids := make([]string, 0, len(raw))
	for _, r := range raw {
		r = bytes.TrimSpace(r)
		if len(r) == 0 || r[0] != '"' {
			continue
		}
		var id string
		if err := json.Unmarshal(r, &id); err == nil {
			ids = append(ids, id)
		}
	}
	*s = ids
	return nil
}

type checkoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}
