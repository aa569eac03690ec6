package models

import (
	"sort"
	"time"
)

type Course struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"not null" json:"description"`
	Price       string         `gorm:"not null" json:"price"`
	ImageURL    string         `gorm:"not null" json:"imageUrl"`
	Duration    string         `gorm:"not null" json:"duration"`
	Level       string         `gorm:"not null" json:"level"`
	Rating      string         `gorm:"not null" json:"rating"`
	RatingCount int            `gorm:"not null" json:"ratingCount"`
	IsPopular   bool           `gorm:"default:false" json:"isPopular"`
	Modules     []CourseModule `json:"modules,omitempty"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
}

type CourseModule struct {
	ID            uint     `gorm:"primarykey" json:"id"`
	CourseID      uint     `gorm:"index" json:"courseId"`
	Title         string   `json:"title"`
	SequenceOrder int      `json:"sequenceOrder"`
	Lessons       []Lesson `gorm:"foreignKey:ModuleID" json:"lessons,omitempty"`
}

type Lesson struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	ModuleID      uint   `gorm:"index" json:"moduleId"`
	Title         string `json:"title"`
	Duration      string `json:"duration"`
	SequenceOrder int    `json:"sequenceOrder"`
}

// SortOutline orders modules and their lessons by sequence order. Preloads do
// not guarantee ordering, so callers walking the outline sort first.
func (c *Course) SortOutline() {
	sort.Slice(c.Modules, func(i, j int) bool {
		return c.Modules[i].SequenceOrder < c.Modules[j].SequenceOrder
	})
	for m := range c.Modules {
		lessons := c.Modules[m].Lessons
		sort.Slice(lessons, func(i, j int) bool {
			return lessons[i].SequenceOrder < lessons[j].SequenceOrder
		})
	}
}

// LessonCount returns the total number of lessons across all modules.
func (c *Course) LessonCount() int {
	total := 0
	for _, m := range c.Modules {
		total += len(m.Lessons)
	}
	return total
}

// FirstLesson returns the first lesson of the first module, or nils when the
// course has no outline yet.
func (c *Course) FirstLesson() (*CourseModule, *Lesson) {
	c.SortOutline()
	for m := range c.Modules {
		if len(c.Modules[m].Lessons) > 0 {
			return &c.Modules[m], &c.Modules[m].Lessons[0]
		}
	}
	return nil, nil
}

// FindLesson locates a lesson by id within the course outline.
func (c *Course) FindLesson(lessonID uint) (*CourseModule, *Lesson) {
	for m := range c.Modules {
		for l := range c.Modules[m].Lessons {
			if c.Modules[m].Lessons[l].ID == lessonID {
				return &c.Modules[m], &c.Modules[m].Lessons[l]
			}
		}
	}
	return nil, nil
}

// NextLesson returns the lesson that follows lessonID: the next lesson in the
// same module if one exists, otherwise the first lesson of the next module.
// On the last lesson of the course it returns that lesson again.
func (c *Course) NextLesson(lessonID uint) (*CourseModule, *Lesson) {
	c.SortOutline()
	for m := range c.Modules {
		for l := range c.Modules[m].Lessons {
			if c.Modules[m].Lessons[l].ID != lessonID {
				continue
			}
			if l+1 < len(c.Modules[m].Lessons) {
				return &c.Modules[m], &c.Modules[m].Lessons[l+1]
			}
			for n := m + 1; n < len(c.Modules); n++ {
				if len(c.Modules[n].Lessons) > 0 {
					return &c.Modules[n], &c.Modules[n].Lessons[0]
				}
			}
			return &c.Modules[m], &c.Modules[m].Lessons[l]
		}
	}
	return nil, nil
}
