package request

import (
	"strings"

	"homeservices_crm/internal/domain/entities"
	"homeservices_crm/internal/usecase"
)

type CreateJobRequest struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	LeadSource    string `json:"lead_source"`
	SalespersonID string `json:"salesperson_id" binding:"required"`
	ServiceType   string `json:"service_type" binding:"required,oneof=insulation hvac plaster"`
	BuildingType  string `json:"building_type" binding:"omitempty,oneof=residential commercial multi_family"`
}

func (r CreateJobRequest) ToInput() usecase.CreateJobInput {
	return usecase.CreateJobInput{
		CustomerName:  strings.TrimSpace(r.CustomerName),
		LeadSource:    strings.TrimSpace(r.LeadSource),
		SalespersonID: strings.TrimSpace(r.SalespersonID),
		ServiceType:   strings.TrimSpace(r.ServiceType),
		BuildingType:  strings.TrimSpace(r.BuildingType),
	}
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateJobStatusRequest) Target() entities.JobStatus {
	return entities.JobStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}
