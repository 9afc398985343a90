package dto

// Write requests for the client and product catalog. Pointer fields are
// optional on partial updates.

type CreateClientRequest struct {
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

type UpdateClientRequest struct {
	CompanyName *string `json:"company_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

type CreateProductRequest struct {
	APIName     string `json:"api_name"`
	Description string `json:"description"`
}

type UpdateProductRequest struct {
	APIName     *string `json:"api_name"`
	Description *string `json:"description"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}
