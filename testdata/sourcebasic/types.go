package sourcebasic

import "time"

type Meta struct {
	Revision int
}

type Author struct {
	ID   *int
	Name string
}

type Chapter struct {
	ID    *int
	Title string
}

type Book struct {
	Meta
	ID          *int
	Title       string
	Pages       int
	PublishedAt time.Time
	AuthorID    *int      `record:"foreignKey"`
	Author      *Author   `record:"relation"`
	Chapters    []Chapter `record:"relation"`
	Ignored     string    `record:"-"`
	internal    string
}
