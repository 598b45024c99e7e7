package models

type Platform struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	Lifecycle
}

func (Platform) TableName() string {
	return "platforms"
}
