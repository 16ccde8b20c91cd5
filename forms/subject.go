package forms

type SubjectForm struct {
	Name    string   `json:"name" binding:"required" validate:"required" example:"Calculus"`
	Teacher string   `json:"teacher" binding:"required" validate:"required" example:"Dr. X"`
	Alumni  []string `json:"alumni" binding:"omitempty,dive,objectId" validate:"optional" example:"63785424db1efbc237faecca"`
}

// @Desc Only the present fields are updated.
type SubjectUpdateForm struct {
	Name    *string   `json:"name" binding:"omitempty,min=1" validate:"optional" example:"Calculus II"`
	Teacher *string   `json:"teacher" binding:"omitempty,min=1" validate:"optional" example:"Dr. Y"`
	Alumni  *[]string `json:"alumni" binding:"omitempty,dive,objectId" validate:"optional" example:"63785424db1efbc237faecca"`
}

type RenameForm struct {
	NewName string `json:"newName" binding:"required" validate:"required" example:"Calculus II"`
}

type StudentForm struct {
	StudentID string `json:"studentId" binding:"required,objectId" validate:"required" example:"63785424db1efbc237faecca"`
}
