package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kyalo/elimu/apps/api/echo"
	"github.com/kyalo/elimu/core"
	"github.com/kyalo/elimu/core/course"
	"github.com/kyalo/elimu/core/dashboard"
	"github.com/kyalo/elimu/core/instructor"
	"github.com/kyalo/elimu/core/lesson"
	"github.com/kyalo/elimu/services/email"
	"github.com/kyalo/elimu/storage/database/dummy"
)

var (
	db            *dummydb.DB
	courseSvc     *course.Service
	lessonSvc     *lesson.Service
	instructorSvc *instructor.Service

	errNotFound = httpErr{Error: "not found"}
)

func setup(t *testing.T) Server {
	// the error handler echoes raw errors in debug mode; tests want the
	// structured payloads clients see in production
	core.Conf.Debug = false
	core.Conf.TestMode = true

	var err error
	if db, err = dummydb.Open(); err != nil {
		t.Fatalf("dummydb.Open() failed: %v", err)
	}

	mailSvc := emailsvc.NewConsoleServiceMock()
	courseSvc = course.NewService(dummydb.NewCourseRepository(db))
	lessonSvc = lesson.NewService(dummydb.NewLessonRepository(db))
	instructorSvc = instructor.NewService(dummydb.NewInstructorRepository(db), mailSvc)
	dashboardSvc := dashboard.NewService(
		dummydb.NewCourseRepository(db),
		dummydb.NewLessonRepository(db),
		dummydb.NewInstructorRepository(db),
	)

	return NewServer(
		&Options{
			DisableReqLogs: true,
			CourseSvc:      courseSvc,
			LessonSvc:      lessonSvc,
			InstructorSvc:  instructorSvc,
			DashboardSvc:   dashboardSvc,
		},
	)
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj() failed: %v", err)
	}
	return data
}

func unmarshalObj(t *testing.T, data []byte, obj interface{}) {
	if err := json.Unmarshal(data, obj); err != nil {
		t.Fatalf("unmarshalObj() failed: %v", err)
	}
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
