package requests

type CreatePatient struct {
	Name           string `json:"name" validate:"required,min=1,max=255"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"max=32"`
	BirthDate      string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender         string `json:"gender" validate:"max=32"`
	Address        string `json:"address" validate:"max=500"`
	MedicalHistory string `json:"medical_history" validate:"max=4000"`
}

type UpdatePatient struct {
	Name           string `json:"name" validate:"required,min=1,max=255"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"max=32"`
	BirthDate      string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender         string `json:"gender" validate:"max=32"`
	Address        string `json:"address" validate:"max=500"`
	MedicalHistory string `json:"medical_history" validate:"max=4000"`
}

type ListPatients struct {
	Pagination
}
