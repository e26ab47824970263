package models

import (
	"time"
)

// Accepted enum values for Patient fields.
var (
	Genders           = []string{"Male", "Female", "Other"}
	InsuranceStatuses = []string{"Insured", "Not Insured", "Pending"}
	OrganDonorValues  = []string{"Yes", "No"}
)

// GovernmentID is an identity document recorded for a patient (Aadhaar, Passport, ...).
type GovernmentID struct {
	Type   string `gorm:"column:type" json:"type"`
	Number string `gorm:"column:number" json:"number"`
}

// InsuranceDetails is the patient's insurance policy as declared at registration.
type InsuranceDetails struct {
	Provider     string `gorm:"column:provider" json:"provider"`
	PolicyNumber string `gorm:"column:policy_number" json:"policyNumber"`
	Validity     string `gorm:"column:validity" json:"validity"`
}

// Consent holds the patient's consent flags.
type Consent struct {
	DataCollection    bool `gorm:"column:data_collection;not null;default:false" json:"dataCollection"`
	ClinicalTreatment bool `gorm:"column:clinical_treatment;not null;default:false" json:"clinicalTreatment"`
	Teleconsultation  bool `gorm:"column:teleconsultation;not null;default:false" json:"teleconsultation"`
	DataSharing       bool `gorm:"column:data_sharing;not null;default:false" json:"dataSharing"`
}

// Patient model. UHID is assigned once and never changes.
type Patient struct {
	ID               string           `gorm:"primaryKey;column:id" json:"id"`
	UHID             string           `gorm:"column:uhid;not null;uniqueIndex" json:"uhid"`
	AlternateUHID    string           `gorm:"column:alternate_uhid" json:"alternateUhid"`
	PatientName      string           `gorm:"column:patient_name;not null;index" json:"patientName"`
	DateOfBirth      string           `gorm:"column:date_of_birth;not null" json:"dateOfBirth"`
	Gender           string           `gorm:"column:gender;check:gender IN ('Male', 'Female', 'Other');not null" json:"gender"`
	Occupation       string           `gorm:"column:occupation" json:"occupation"`
	Address          string           `gorm:"column:address;not null" json:"address"`
	Phone            string           `gorm:"column:phone" json:"phone"`
	Email            string           `gorm:"column:email;index" json:"email"`
	GovernmentID     GovernmentID     `gorm:"embedded;embeddedPrefix:government_id_" json:"governmentId"`
	InsuranceDetails InsuranceDetails `gorm:"embedded;embeddedPrefix:insurance_" json:"insuranceDetails"`
	InsuranceStatus  string           `gorm:"column:insurance_status" json:"insuranceStatus"`
	Consent          Consent          `gorm:"embedded;embeddedPrefix:consent_" json:"consent"`
	OrganDonorStatus string           `gorm:"column:organ_donor_status" json:"organDonorStatus"`
	CreatedAt        time.Time        `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
	Invoices         []Invoice        `gorm:"foreignKey:PatientID;references:ID" json:"-"`

	// Age is derived from DateOfBirth when the record is served.
	Age *int `gorm:"-" json:"age"`
}

func (Patient) TableName() string {
	return "patient"
}
