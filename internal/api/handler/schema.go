package handler

import (
	"github.com/facetime/facetime-api/internal/core/domain"
	"github.com/facetime/facetime-api/internal/core/ports"
)

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
	Name     string `json:"name"     validate:"required,max=100"`
}

type signupResponse struct {
	ID string `json:"id"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

type productResponse struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	SkinType    string `json:"skinType"`
	Description string `json:"description"`
}

type profileResponse struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	SkinType string `json:"skinType"`
}

// errorResponse documents the error envelope rendered by the API error handler.
type errorResponse struct {
	Error string `json:"error"`
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse{
			ProductID:   p.ID,
			Name:        p.Name,
			SkinType:    p.SkinType,
			Description: p.Description,
		})
	}
	return out
}

func toProfileResponse(p *ports.Profile) profileResponse {
	return profileResponse{Email: p.Email, Name: p.Name, SkinType: p.SkinType}
}
