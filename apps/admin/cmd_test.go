package main

import (
	"testing"

	"github.com/kyalo/elimu/storage/database/dummy"
)

func setup(t *testing.T) *commandLine {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}
	return &commandLine{db: db}
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
}

func Test_commandLine_run(t *testing.T) {
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "seed", args: []string{"seed"}},
		{name: "stats", args: []string{"stats"}},
		{name: "stats json", args: []string{"stats", "-json"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			cli := setup(t)
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_seedCounts(t *testing.T) {
	cli := setup(t)

	if err := cli.seed(); err != nil {
		t.Fatalf("cli.seed() failed: %v", err)
	}

	courses, err := dummydb.NewCourseRepository(cli.db).QueryAllCourses()
	if err != nil {
		t.Fatalf("QueryAllCourses() failed: %v", err)
	}
	if len(courses) != 3 {
		t.Errorf("len(courses) = %d; want 3", len(courses))
	}

	lessons, err := dummydb.NewLessonRepository(cli.db).QueryAllLessons()
	if err != nil {
		t.Fatalf("QueryAllLessons() failed: %v", err)
	}
	if len(lessons) != 5 {
		t.Errorf("len(lessons) = %d; want 5", len(lessons))
	}

	instructors, err := dummydb.NewInstructorRepository(cli.db).QueryAllInstructors()
	if err != nil {
		t.Fatalf("QueryAllInstructors() failed: %v", err)
	}
	if len(instructors) != 5 {
		t.Errorf("len(instructors) = %d; want 5", len(instructors))
	}
}
