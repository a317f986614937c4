package notify_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/devantler-tech/offboard/pkg/utils/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTimer struct {
	total time.Duration
	stage time.Duration
}

func (fixedTimer) Start()    {}
func (fixedTimer) NewStage() {}

func (f fixedTimer) GetTiming() (time.Duration, time.Duration) { return f.total, f.stage }

func TestHelpersWriteSymbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		write func(*bytes.Buffer)
		want  string
	}{
		{"error", func(b *bytes.Buffer) { notify.Errorf(b, "delete %s failed", "app") }, "✗ delete app failed\n"},
		{"warning", func(b *bytes.Buffer) { notify.Warningf(b, "slow") }, "⚠ slow\n"},
		{"activity", func(b *bytes.Buffer) { notify.Activityf(b, "deleting %d secrets", 2) }, "► deleting 2 secrets\n"},
		{"success", func(b *bytes.Buffer) { notify.Successf(b, "done") }, "✔ done\n"},
		{"info", func(b *bytes.Buffer) { notify.Infof(b, "dry run") }, "ℹ dry run\n"},
		{"title", func(b *bytes.Buffer) { notify.Titlef(b, "🧹", "Offboard %s", "billing") }, "🧹 Offboard billing\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tc.write(&buf)
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestTitleWithoutEmojiUsesDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	notify.WriteMessage(notify.Message{Type: notify.TitleType, Content: "Plan", Writer: &buf})

	assert.Equal(t, "ℹ️ Plan\n", buf.String())
}

func TestContentWithoutArgsIsNotFormatted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	notify.WriteMessage(notify.Message{Type: notify.InfoType, Content: "100% done", Writer: &buf})

	assert.Equal(t, "ℹ 100% done\n", buf.String())
}

func TestMultilineContentIsIndented(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	notify.Errorf(&buf, "two errors:\nfirst\nsecond")

	assert.Equal(t, "✗ two errors:\n  first\n  second\n", buf.String())
}

func TestSuccessWithTimerPrintsTiming(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	notify.WriteMessage(notify.Message{
		Type:    notify.SuccessType,
		Content: "offboarded",
		Timer:   fixedTimer{total: 3 * time.Second, stage: time.Second},
		Writer:  &buf,
	})

	assert.Equal(t, "✔ offboarded\n⏲ current: 1s\n  total:  3s\n", buf.String())
}

func TestStageSeparatingWriterSeparatesTitles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writer := notify.NewStageSeparatingWriter(&buf)

	notify.Titlef(writer, "🧹", "Delete applications")
	notify.Activityf(writer, "deleting")
	notify.Successf(writer, "deleted")
	notify.Titlef(writer, "🔐", "Delete secrets")
	notify.Infof(writer, "nothing to do")

	want := "🧹 Delete applications\n► deleting\n✔ deleted\n\n🔐 Delete secrets\nℹ nothing to do\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestStageSeparatingWriterWrapsErrors(t *testing.T) {
	t.Parallel()

	writer := notify.NewStageSeparatingWriter(failingWriter{})

	_, err := writer.Write([]byte("► x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write data")
}

func TestStageSeparatingWriterIgnoresEmptyWrites(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writer := notify.NewStageSeparatingWriter(&buf)

	n, err := writer.Write(nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	notify.Titlef(writer, "🧹", "First")
	assert.Equal(t, "🧹 First\n", buf.String())
}
