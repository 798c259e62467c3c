package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"

	"github.com/kyalo/elimu/core/dashboard"
	"github.com/kyalo/elimu/storage/database/dummy"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db *dummydb.DB
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  seed          - load the demo catalog and print collection counts")
	fmt.Println("  stats [-json] - print dashboard stats for the demo catalog")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	statsCmd := flag.NewFlagSet("stats", flag.ExitOnError)
	statsJSON := statsCmd.Bool("json", false, "Print stats as JSON.")

	switch args[1] {
	case "seed":
		return cli.seed()
	case "stats":
		if err := statsCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.stats(*statsJSON)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) seed() error {
	if err := dummydb.Seed(cli.db); err != nil {
		return err
	}

	courses, err := dummydb.NewCourseRepository(cli.db).QueryAllCourses()
	if err != nil {
		return err
	}
	lessons, err := dummydb.NewLessonRepository(cli.db).QueryAllLessons()
	if err != nil {
		return err
	}
	instructors, err := dummydb.NewInstructorRepository(cli.db).QueryAllInstructors()
	if err != nil {
		return err
	}

	fmt.Printf("seeded %d courses, %d lessons, %d instructors\n", len(courses), len(lessons), len(instructors))
	return nil
}

func (cli *commandLine) stats(asJSON bool) error {
	if err := dummydb.Seed(cli.db); err != nil {
		return err
	}

	svc := dashboard.NewService(
		dummydb.NewCourseRepository(cli.db),
		dummydb.NewLessonRepository(cli.db),
		dummydb.NewInstructorRepository(cli.db),
	)
	stats, err := svc.Stats()
	if err != nil {
		return err
	}

	if asJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("courses: %d %v\n", stats.TotalCourses, stats.CoursesByStatus)
	fmt.Printf("lessons: %d %v\n", stats.TotalLessons, stats.LessonsByStatus)
	fmt.Printf("instructors: %d\n", stats.TotalInstructors)
	return nil
}
