package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyalo/elimu/core/course"
)

type courseResp struct {
	course.Course
	Status             course.Status `json:"status"`
	DurationInDays     int           `json:"duration_in_days"`
	InstructorsDisplay string        `json:"instructors_display"`
	StartDateDisplay   string        `json:"start_date_display"`
	EndDateDisplay     string        `json:"end_date_display"`
}

func createCourse(t *testing.T, nc course.NewCourse) course.Course {
	t.Helper()
	crs, err := courseSvc.Create(nc)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	return crs
}

func TestCourseAPI_create(t *testing.T) {
	server := setup(t)

	body := marshalObj(t, course.NewCourse{
		Name:        "Introduction to React Development",
		Description: "Learn the fundamentals of React",
		StartDate:   "2020-02-01",
		EndDate:     "2020-03-15",
		Instructors: []string{"John Smith", "Sarah Johnson"},
	})
	req, rec := newRequest(http.MethodPost, "/v1/courses", body)
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp courseResp
	unmarshalObj(t, rec.Body.Bytes(), &resp)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Introduction to React Development", resp.Name)
	assert.Equal(t, course.StatusEnded, resp.Status)
	assert.Equal(t, 43, resp.DurationInDays)
	assert.Equal(t, "John Smith, Sarah Johnson", resp.InstructorsDisplay)
	assert.Equal(t, "Feb 1, 2020", resp.StartDateDisplay)
	assert.Equal(t, "Mar 15, 2020", resp.EndDateDisplay)
}

func TestCourseAPI_create_validation(t *testing.T) {
	server := setup(t)

	tests := []httpTest{
		{
			name:     "name is required",
			body:     marshalObj(t, course.NewCourse{StartDate: "2024-02-01"}),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"name":"this field is required"}`),
		},
		{
			name:     "start date must be ISO",
			body:     marshalObj(t, course.NewCourse{Name: "Go 101", StartDate: "02/01/2024"}),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"start_date":"must be a valid date (YYYY-MM-DD)"}`),
		},
		{
			name:     "end date must be ISO",
			body:     marshalObj(t, course.NewCourse{Name: "Go 101", EndDate: "March 15"}),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"end_date":"must be a valid date (YYYY-MM-DD)"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/v1/courses", tt.body)
			server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func TestCourseAPI_query(t *testing.T) {
	server := setup(t)

	createCourse(t, course.NewCourse{Name: "Introduction to React Development", Description: "components and hooks", StartDate: "2020-02-01", EndDate: "2020-03-15"})
	createCourse(t, course.NewCourse{Name: "Advanced JavaScript Concepts", Description: "closures and prototypes", StartDate: "2020-01-15", EndDate: "2099-02-28"})
	createCourse(t, course.NewCourse{Name: "UI/UX Design Principles", StartDate: "2099-03-01", EndDate: "2099-04-15"})

	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "all", path: "/v1/courses", want: 3},
		{name: "search", path: "/v1/courses?search=react", want: 1},
		{name: "search description", path: "/v1/courses?search=closures", want: 1},
		{name: "status", path: "/v1/courses?status=Upcoming", want: 1},
		{name: "search and status", path: "/v1/courses?search=react&status=Upcoming", want: 0},
		{name: "no match", path: "/v1/courses?search=cobol", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			server.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var resp []courseResp
			unmarshalObj(t, rec.Body.Bytes(), &resp)
			assert.Len(t, resp, tt.want)
		})
	}
}

func TestCourseAPI_retrieve(t *testing.T) {
	server := setup(t)

	crs := createCourse(t, course.NewCourse{Name: "Go 101", StartDate: "2099-03-01", EndDate: "2099-04-15"})

	req, rec := newRequest(http.MethodGet, "/v1/courses/"+crs.ID)
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp courseResp
	unmarshalObj(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, crs.ID, resp.ID)
	assert.Equal(t, course.StatusUpcoming, resp.Status)
}

func TestCourseAPI_retrieve_unknown(t *testing.T) {
	server := setup(t)

	tt := httpTest{
		wantCode: http.StatusNotFound,
		wantData: marshalObj(t, errNotFound),
	}
	req, rec := newRequest(http.MethodGet, "/v1/courses/nope")
	server.ServeHTTP(rec, req)
	checkCodeAndData(t, tt, rec)
}

func TestCourseAPI_update(t *testing.T) {
	server := setup(t)

	crs := createCourse(t, course.NewCourse{Name: "Go 101", Description: "basics"})

	body := marshalObj(t, course.UpdateCourse{Name: "Go 102", StartDate: "2024-05-01", EndDate: "2024-06-01"})
	req, rec := newRequest(http.MethodPut, "/v1/courses/"+crs.ID, body)
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp courseResp
	unmarshalObj(t, rec.Body.Bytes(), &resp)
	assert.Equal(t, crs.ID, resp.ID)
	assert.Equal(t, "Go 102", resp.Name)
	assert.Empty(t, resp.Description) // full replacement
	assert.Equal(t, 31, resp.DurationInDays)
}

func TestCourseAPI_update_unknown(t *testing.T) {
	server := setup(t)

	tt := httpTest{
		body:     marshalObj(t, course.UpdateCourse{Name: "Ghost"}),
		wantCode: http.StatusNotFound,
		wantData: marshalObj(t, errNotFound),
	}
	req, rec := newRequest(http.MethodPut, "/v1/courses/nope", tt.body)
	server.ServeHTTP(rec, req)
	checkCodeAndData(t, tt, rec)
}

func TestCourseAPI_destroy(t *testing.T) {
	server := setup(t)

	crs := createCourse(t, course.NewCourse{Name: "Go 101"})

	req, rec := newRequest(http.MethodDelete, "/v1/courses/"+crs.ID)
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req, rec = newRequest(http.MethodGet, "/v1/courses/"+crs.ID)
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// unknown ids are a no-op
	req, rec = newRequest(http.MethodDelete, "/v1/courses/nope")
	server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
