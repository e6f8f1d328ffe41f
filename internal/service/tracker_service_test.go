package service

import (
	"testing"
	"time"

	"edupulse_backend/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEvent(t *testing.T) {
	before := time.Now()
	event := BuildEvent(42, "sess-abc", model.ActionCourseView, model.EventDetails{"courseId": "7"})
	after := time.Now()

	_, err := uuid.Parse(event.ID)
	require.NoError(t, err, "事件ID应是合法UUID")
	assert.Equal(t, uint(42), event.UserID)
	assert.Equal(t, "sess-abc", event.SessionID)
	assert.Equal(t, model.ActionCourseView, event.Action)
	assert.Equal(t, "7", event.Details.CourseID())
	assert.False(t, event.Timestamp.Before(before))
	assert.False(t, event.Timestamp.After(after))
}

func TestBuildEventGeneratesSessionID(t *testing.T) {
	event := BuildEvent(1, "", model.ActionNavigation, nil)

	_, err := uuid.Parse(event.SessionID)
	require.NoError(t, err, "未传会话ID时自动生成")
}

func TestBuildEventUniqueIDs(t *testing.T) {
	a := BuildEvent(1, "s", model.ActionButtonClick, nil)
	b := BuildEvent(1, "s", model.ActionButtonClick, nil)
	assert.NotEqual(t, a.ID, b.ID)
}
