package models

// ProjectModel represents a showcased project.
type ProjectModel struct {
	Base
	Title       string  `json:"title"       gorm:"size:255;not null"`
	Slug        string  `json:"slug"        gorm:"size:255;not null;index"`
	Description string  `json:"description" gorm:"type:text"`
	Publication string  `json:"publication" gorm:"type:text"`
	Link        string  `json:"link"        gorm:"size:255"`
	ImagePath   *string `json:"image_path"  gorm:"column:image_path;size:255"`
}

func (ProjectModel) TableName() string { return "project" }

// ProjectCategoryModel links a project to a category (many-to-many).
// Rows cascade away with either side.
type ProjectCategoryModel struct {
	Base
	IDProject  uint `json:"id_project"  gorm:"column:id_project;index;not null"`
	IDCategory uint `json:"id_category" gorm:"column:id_category;index;not null"`

	Project  *ProjectModel  `json:"-" gorm:"foreignKey:IDProject;constraint:OnDelete:CASCADE"`
	Category *CategoryModel `json:"-" gorm:"foreignKey:IDCategory;constraint:OnDelete:CASCADE"`
}

func (ProjectCategoryModel) TableName() string { return "project_category" }

// ProjectMemberModel links a project to an intern (many-to-many).
type ProjectMemberModel struct {
	Base
	IDProject uint `json:"id_project" gorm:"column:id_project;index;not null"`
	IDIntern  uint `json:"id_intern"  gorm:"column:id_intern;index;not null"`

	Project *ProjectModel `json:"-" gorm:"foreignKey:IDProject;constraint:OnDelete:CASCADE"`
	Intern  *InternModel  `json:"-" gorm:"foreignKey:IDIntern;constraint:OnDelete:CASCADE"`
}

func (ProjectMemberModel) TableName() string { return "project_member" }
