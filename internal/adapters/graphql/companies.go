package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"travelbook/internal/domain"
)

type CompanyService struct{ c *Client }

func NewCompanyService(c *Client) *CompanyService { return &CompanyService{c: c} }

func companyVars(in domain.CompanyInput) map[string]any {
	input := map[string]any{
		"name":  in.Name,
		"email": in.Email,
	}
	if in.Phone != nil {
		input["phone"] = *in.Phone
	}
	if in.Description != nil {
		input["description"] = *in.Description
	}
	return input
}

func (s *CompanyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	data, err := s.c.Query(ctx, "getAllCompanies", qGetAllCompanies, nil, true)
	if err != nil {
		return nil, err
	}
	var out struct {
		Companies []companyPayload `json:"getAllCompanies"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	if out.Companies == nil {
		return nil, fmt.Errorf("failed to fetch companies")
	}
	companies := make([]domain.Company, 0, len(out.Companies))
	for _, dto := range out.Companies {
		companies = append(companies, companyFromPayload(dto))
	}
	return companies, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, id int64) (domain.Company, error) {
	data, err := s.c.Query(ctx, "getCompanyById", qGetCompanyByID, map[string]any{
		"id": strconv.FormatInt(id, 10),
	}, true)
	if err != nil {
		return domain.Company{}, err
	}
	var out struct {
		Company *companyPayload `json:"getCompanyById"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.Company{}, err
	}
	if out.Company == nil {
		return domain.Company{}, fmt.Errorf("company %d: %w", id, domain.ErrNotFound)
	}
	return companyFromPayload(*out.Company), nil
}

func (s *CompanyService) CreateCompany(ctx context.Context, in domain.CompanyInput) (domain.Company, error) {
	data, err := s.c.Mutate(ctx, "createCompany", mCreateCompany, map[string]any{
		"input": companyVars(in),
	}, true)
	if err != nil {
		return domain.Company{}, err
	}
	var out struct {
		Company *companyPayload `json:"createCompany"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.Company{}, err
	}
	if out.Company == nil {
		return domain.Company{}, fmt.Errorf("failed to create company")
	}
	return companyFromPayload(*out.Company), nil
}

func (s *CompanyService) UpdateCompany(ctx context.Context, id int64, in domain.CompanyInput) (domain.Company, error) {
	data, err := s.c.Mutate(ctx, "updateCompany", mUpdateCompany, map[string]any{
		"id":    strconv.FormatInt(id, 10),
		"input": companyVars(in),
	}, true)
	if err != nil {
		return domain.Company{}, err
	}
	var out struct {
		Company *companyPayload `json:"updateCompany"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.Company{}, err
	}
	if out.Company == nil {
		return domain.Company{}, fmt.Errorf("company %d: %w", id, domain.ErrNotFound)
	}
	return companyFromPayload(*out.Company), nil
}
