package models

type Patient struct {
	ID             string `bson:"_id,omitempty"`
	Name           string `bson:"name"`
	Email          string `bson:"email,omitempty"`
	Phone          string `bson:"phone,omitempty"`
	BirthDate      string `bson:"birthDate,omitempty"`
	Gender         string `bson:"gender,omitempty"`
	Address        string `bson:"address,omitempty"`
	MedicalHistory string `bson:"medicalHistory,omitempty"`
	TimeModel      `bson:",inline"`
}
