package model

// Genre tags contests and problems. Names are stored lowercased and trimmed.
type Genre struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}
