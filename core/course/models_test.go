package course

import (
	"testing"
	"time"
)

func TestCourse_StatusAt(t *testing.T) {
	crs := Course{StartDate: "2024-02-01", EndDate: "2024-03-15"}

	date := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("time.Parse(%s) failed: %v", s, err)
		}
		return d
	}

	tests := []struct {
		name string
		crs  Course
		now  time.Time
		want Status
	}{
		{name: "before start", crs: crs, now: date("2024-01-31"), want: StatusUpcoming},
		{name: "on start", crs: crs, now: date("2024-02-01"), want: StatusActive},
		{name: "within range", crs: crs, now: date("2024-02-20"), want: StatusActive},
		{name: "on end", crs: crs, now: date("2024-03-15"), want: StatusActive},
		{name: "just after end", crs: crs, now: date("2024-03-15").Add(time.Hour), want: StatusEnded},
		{name: "after end", crs: crs, now: date("2024-04-01"), want: StatusEnded},
		{name: "no dates", crs: Course{}, now: date("2024-02-20"), want: StatusEnded},
		{name: "invalid dates", crs: Course{StartDate: "lol", EndDate: "lmao"}, now: date("2024-02-20"), want: StatusEnded},
		{name: "start only, before", crs: Course{StartDate: "2024-02-01"}, now: date("2024-01-01"), want: StatusUpcoming},
		{name: "start only, after", crs: Course{StartDate: "2024-02-01"}, now: date("2024-02-02"), want: StatusEnded},
		{name: "end only", crs: Course{EndDate: "2024-03-15"}, now: date("2024-02-20"), want: StatusEnded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.crs.StatusAt(tt.now); got != tt.want {
				t.Errorf("StatusAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCourse_Status_readsClockFresh(t *testing.T) {
	defer func() { nowFunc = time.Now }()

	crs := Course{StartDate: "2024-02-01", EndDate: "2024-03-15"}

	nowFunc = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	if got := crs.Status(); got != StatusUpcoming {
		t.Errorf("Status() = %v, want %v", got, StatusUpcoming)
	}

	// no transition; only time passed
	nowFunc = func() time.Time { return time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC) }
	if got := crs.Status(); got != StatusActive {
		t.Errorf("Status() = %v, want %v", got, StatusActive)
	}

	nowFunc = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	if got := crs.Status(); got != StatusEnded {
		t.Errorf("Status() = %v, want %v", got, StatusEnded)
	}
}

func TestCourse_DurationInDays(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{name: "six week course", start: "2024-02-01", end: "2024-03-15", want: 43},
		{name: "swapped is symmetric", start: "2024-03-15", end: "2024-02-01", want: 43},
		{name: "same day", start: "2024-02-01", end: "2024-02-01", want: 0},
		{name: "one day", start: "2024-02-01", end: "2024-02-02", want: 1},
		{name: "missing start", end: "2024-03-15", want: 0},
		{name: "missing end", start: "2024-02-01", want: 0},
		{name: "both missing", want: 0},
		{name: "invalid start", start: "yesterday", end: "2024-03-15", want: 0},
		{name: "partial day rounds up", start: "2024-02-01", end: "2024-02-02T12:00:00Z", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crs := Course{StartDate: tt.start, EndDate: tt.end}
			if got := crs.DurationInDays(); got != tt.want {
				t.Errorf("DurationInDays() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCourse_FormatDate(t *testing.T) {
	crs := Course{}

	tests := []struct {
		name string
		date string
		want string
	}{
		{name: "valid", date: "2024-02-01", want: "Feb 1, 2024"},
		{name: "blank", date: "", want: ""},
		{name: "invalid", date: "not-a-date", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := crs.FormatDate(tt.date); got != tt.want {
				t.Errorf("FormatDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCourse_InstructorsDisplay(t *testing.T) {
	tests := []struct {
		name        string
		instructors []string
		want        string
	}{
		{name: "none", instructors: nil, want: ""},
		{name: "one", instructors: []string{"Mike Wilson"}, want: "Mike Wilson"},
		{name: "many", instructors: []string{"John Smith", "Sarah Johnson"}, want: "John Smith, Sarah Johnson"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crs := Course{Instructors: tt.instructors}
			if got := crs.InstructorsDisplay(); got != tt.want {
				t.Errorf("InstructorsDisplay() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQueryFilter_MatchesCreatedRange(t *testing.T) {
	createdAt := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		from, to string
		want     bool
	}{
		{name: "no bounds", want: true},
		{name: "within window", from: "2024-06-01", to: "2024-06-30", want: true},
		{name: "on from day", from: "2024-06-10", want: true},
		{name: "on to day", to: "2024-06-10", want: true}, // inclusive through end of day
		{name: "before from", from: "2024-06-11", want: false},
		{name: "after to", to: "2024-06-09", want: false},
		{name: "unparseable bounds ignored", from: "lol", to: "lmao", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qf := QueryFilter{CreatedFrom: tt.from, CreatedTo: tt.to}
			if got := qf.MatchesCreatedRange(createdAt); got != tt.want {
				t.Errorf("MatchesCreatedRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewCourse_Validate(t *testing.T) {
	tests := []struct {
		name    string
		data    NewCourse
		wantErr bool
	}{
		{name: "ok", data: NewCourse{Name: "Go 101", StartDate: "2024-02-01", EndDate: "2024-03-15"}},
		{name: "ok without dates", data: NewCourse{Name: "Go 101"}},
		{name: "missing name", data: NewCourse{StartDate: "2024-02-01"}, wantErr: true},
		{name: "bad start date", data: NewCourse{Name: "Go 101", StartDate: "01/02/2024"}, wantErr: true},
		{name: "bad end date", data: NewCourse{Name: "Go 101", EndDate: "March 15"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.data.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewCourse_Validate_cleansInstructors(t *testing.T) {
	data := NewCourse{
		Name:        "  Go 101  ",
		Instructors: []string{" John Smith ", "", "  ", "Sarah Johnson"},
	}
	if err := data.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if data.Name != "Go 101" {
		t.Errorf("Name = %q, want %q", data.Name, "Go 101")
	}
	want := []string{"John Smith", "Sarah Johnson"}
	if len(data.Instructors) != len(want) {
		t.Fatalf("Instructors = %v, want %v", data.Instructors, want)
	}
	for i := range want {
		if data.Instructors[i] != want[i] {
			t.Errorf("Instructors[%d] = %q, want %q", i, data.Instructors[i], want[i])
		}
	}
}
