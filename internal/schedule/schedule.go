// Package schedule holds the pure in-memory operations over the course and
// task collections. It performs no I/O; the CLI layer and the sync
// coordinator are its only callers.
package schedule

import (
	"errors"
	"fmt"
	"sort"

	"github.com/julianstephens/smartsched/internal/models"
)

var (
	ErrDuplicateID    = errors.New("id already exists")
	ErrCourseNotFound = errors.New("course not found")
	ErrTaskNotFound   = errors.New("task not found")
)

// AddCourse appends a course, enforcing id uniqueness within the collection.
func AddCourse(courses []models.Course, c models.Course) ([]models.Course, error) {
	if indexOfCourse(courses, c.ID) >= 0 {
		return nil, fmt.Errorf("course %s: %w", c.ID, ErrDuplicateID)
	}
	return append(courses, c), nil
}

// EditCourse replaces the course with the same id whole. The id is
// preserved; every other field takes the new value.
func EditCourse(courses []models.Course, c models.Course) ([]models.Course, error) {
	i := indexOfCourse(courses, c.ID)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, c.ID)
	}
	out := append([]models.Course(nil), courses...)
	out[i] = c
	return out, nil
}

// DeleteCourse removes the course with the given id.
func DeleteCourse(courses []models.Course, id string) ([]models.Course, error) {
	i := indexOfCourse(courses, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, id)
	}
	out := make([]models.Course, 0, len(courses)-1)
	out = append(out, courses[:i]...)
	return append(out, courses[i+1:]...), nil
}

// FindCourse returns the course with the given id.
func FindCourse(courses []models.Course, id string) (models.Course, error) {
	i := indexOfCourse(courses, id)
	if i < 0 {
		return models.Course{}, fmt.Errorf("%w: %s", ErrCourseNotFound, id)
	}
	return courses[i], nil
}

// CoursesOn returns the courses held on the given day, sorted by start time.
// Overlapping sessions are allowed and returned in start order.
func CoursesOn(courses []models.Course, day models.DayOfWeek) []models.Course {
	var out []models.Course
	for _, c := range courses {
		if c.Day == day {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// AddTask appends a task, enforcing id uniqueness within the collection.
func AddTask(tasks []models.Task, t models.Task) ([]models.Task, error) {
	if indexOfTask(tasks, t.ID) >= 0 {
		return nil, fmt.Errorf("task %s: %w", t.ID, ErrDuplicateID)
	}
	return append(tasks, t), nil
}

// EditTask replaces the task with the same id whole.
func EditTask(tasks []models.Task, t models.Task) ([]models.Task, error) {
	i := indexOfTask(tasks, t.ID)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, t.ID)
	}
	out := append([]models.Task(nil), tasks...)
	out[i] = t
	return out, nil
}

// DeleteTask removes the task with the given id.
func DeleteTask(tasks []models.Task, id string) ([]models.Task, error) {
	i := indexOfTask(tasks, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	out := make([]models.Task, 0, len(tasks)-1)
	out = append(out, tasks[:i]...)
	return append(out, tasks[i+1:]...), nil
}

// FindTask returns the task with the given id.
func FindTask(tasks []models.Task, id string) (models.Task, error) {
	i := indexOfTask(tasks, id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return tasks[i], nil
}

// TasksInQuadrant returns the tasks classified into the given quadrant,
// sorted by deadline.
func TasksInQuadrant(tasks []models.Task, q models.Quadrant) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if t.Quadrant() == q {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Deadline.Before(out[j].Deadline)
	})
	return out
}

// NextColor picks the palette color for a new course, cycling through the
// palette in order of current usage.
func NextColor(courses []models.Course, palette []string) string {
	if len(palette) == 0 {
		return ""
	}
	return palette[len(courses)%len(palette)]
}

func indexOfCourse(courses []models.Course, id string) int {
	for i, c := range courses {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func indexOfTask(tasks []models.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
