package rest

import (
	"context"
	"fmt"

	"travelbook/internal/domain"
)

type CompanyService struct{ c *Client }

func NewCompanyService(c *Client) *CompanyService { return &CompanyService{c: c} }

type companyRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (s *CompanyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	var out []companyResponse
	if err := s.c.get(ctx, "companies.list", "/companies", nil, &out, true); err != nil {
		return nil, err
	}
	companies := make([]domain.Company, 0, len(out))
	for _, dto := range out {
		companies = append(companies, companyFromResponse(dto))
	}
	return companies, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, id int64) (domain.Company, error) {
	var out companyResponse
	if err := s.c.get(ctx, "companies.get", fmt.Sprintf("/companies/%d", id), nil, &out, true); err != nil {
		return domain.Company{}, err
	}
	return companyFromResponse(out), nil
}

func (s *CompanyService) CreateCompany(ctx context.Context, in domain.CompanyInput) (domain.Company, error) {
	body := companyRequest{Name: in.Name, Email: in.Email, Phone: in.Phone, Description: in.Description}
	var out companyResponse
	if err := s.c.post(ctx, "companies.create", "/companies", body, &out, true); err != nil {
		return domain.Company{}, err
	}
	return companyFromResponse(out), nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, id int64, in domain.CompanyInput) (domain.Company, error) {
	body := companyRequest{Name: in.Name, Email: in.Email, Phone: in.Phone, Description: in.Description}
	var out companyResponse
	if err := s.c.put(ctx, "companies.update", fmt.Sprintf("/companies/%d", id), body, &out, true); err != nil {
		return domain.Company{}, err
	}
	return companyFromResponse(out), nil
}
