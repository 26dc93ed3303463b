package dto

type CreateCustomerInput struct {
	Name         string `json:"name"`
	Company      string `json:"company"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Industry     string `json:"industry"`
	ContractType string `json:"contract_type"`
}
