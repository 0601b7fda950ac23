package models

import "time"

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

const DefaultRecipeImage = "recipe_images/default.jpg"

type Recipe struct {
	ID           uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title        string     `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Slug         string     `gorm:"column:slug;type:varchar(220);not null;uniqueIndex:uk_recipes_slug" json:"slug"`
	AuthorID     uint64     `gorm:"column:author_id;not null;index:idx_recipes_author" json:"author_id"`
	CategoryID   *uint64    `gorm:"column:category_id;index:idx_recipes_category" json:"category_id"`
	Description  string     `gorm:"column:description;type:text" json:"description"`
	Ingredients  string     `gorm:"column:ingredients;type:text" json:"ingredients"` // 每行一个配料
	Instructions string     `gorm:"column:instructions;type:text" json:"instructions"`
	CookingTime  int        `gorm:"column:cooking_time;not null;default:0" json:"cooking_time"` // 分钟
	Difficulty   Difficulty `gorm:"column:difficulty;type:varchar(10);not null" json:"difficulty"`
	Image        string     `gorm:"column:image;type:varchar(255);not null;default:''" json:"image"`
	Servings     int        `gorm:"column:servings;not null;default:1" json:"servings"`

	Calories      int     `gorm:"column:calories;not null;default:0" json:"calories"`
	Proteins      float64 `gorm:"column:proteins;not null;default:0" json:"proteins"`
	Fats          float64 `gorm:"column:fats;not null;default:0" json:"fats"`
	Carbohydrates float64 `gorm:"column:carbohydrates;not null;default:0" json:"carbohydrates"`

	IsPublished bool       `gorm:"column:is_published;not null;index:idx_recipes_published_created,priority:1" json:"is_published"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at"` // 首次发布时间，只写一次
	CreatedAt   time.Time  `gorm:"column:created_at;index:idx_recipes_published_created,priority:2" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`

	Author   *User        `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Category *Category    `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Tags     []Tag        `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"tags,omitempty"`
	Steps    []RecipeStep `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"steps,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// RecipeStep 按 step_number 升序展示
type RecipeStep struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecipeID    uint64 `gorm:"column:recipe_id;not null;index:idx_recipe_steps_recipe" json:"recipe_id"`
	StepNumber  int    `gorm:"column:step_number;not null" json:"step_number"`
	Title       string `gorm:"column:title;type:varchar(200);not null;default:''" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Image       string `gorm:"column:image;type:varchar(255);not null;default:''" json:"image"`
	Duration    int    `gorm:"column:duration;not null;default:0" json:"duration"` // 分钟
}

func (RecipeStep) TableName() string {
	return "recipe_steps"
}
