package logger

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ansiProfile = termenv.ANSI

var linePattern = regexp.MustCompile(`^\[\d{2}-\d{2}-\d{4} \d{2}:\d{2}:\d{2}\.\d{3}\] \[[A-Z0-9_]+\] .*$`)

// lineType extracts the type tag of a well-formed line.
func lineType(line string) string {
	start := strings.Index(line, "] [") + 3
	end := strings.Index(line[start:], "]")
	return line[start : start+end]
}

func TestAdmission_ProfileMatrix(t *testing.T) {
	canonical := []EntryType{TypeError, TypeInfo, TypeWarning, TypeCritical, TypeDebug}
	admitted := map[string][]EntryType{
		"DEFAULT":    {TypeError, TypeInfo, TypeWarning, TypeCritical},
		"DEBUG":      {TypeError, TypeInfo, TypeWarning, TypeCritical, TypeDebug},
		"PRODUCTIVE": {TypeError, TypeInfo, TypeCritical},
		"ERROR":      {TypeError},
		"CRITICAL":   {TypeCritical},
		"NONE":       {},
	}

	for profile, want := range admitted {
		for _, typ := range canonical {
			t.Run(profile+"/"+string(typ), func(t *testing.T) {
				l, _ := newTestLogger(t, profile)
				l.Entry(typ, "msg")

				lines := readLines(t, l)
				if TypeSet(want).Contains(typ) {
					require.Len(t, lines, 1)
					assert.Equal(t, string(typ), lineType(lines[0]))
				} else {
					assert.Empty(t, lines)
				}
			})
		}
	}
}

func TestAdmission_CustomTypesAlwaysWritten(t *testing.T) {
	for _, profile := range Profiles() {
		t.Run(string(profile), func(t *testing.T) {
			l, _ := newTestLogger(t, string(profile))
			l.Entry("audit", "custom")
			l.Entry("Metrics", "custom")

			lines := readLines(t, l)
			require.Len(t, lines, 2)
			assert.Equal(t, "AUDIT", lineType(lines[0]))
			assert.Equal(t, "METRICS", lineType(lines[1]))
		})
	}
}

func TestScenario_Productive(t *testing.T) {
	l, _ := newTestLogger(t, "PRODUCTIVE")

	l.Entry(TypeError, "e")
	l.Entry(TypeWarning, "w")
	l.Entry(TypeInfo, "i")
	l.Entry("AUDIT", "a")

	lines := readLines(t, l)
	require.Len(t, lines, 3)
	assert.Equal(t, "ERROR", lineType(lines[0]))
	assert.Equal(t, "INFO", lineType(lines[1]))
	assert.Equal(t, "AUDIT", lineType(lines[2]))
}

func TestScenario_None(t *testing.T) {
	l, _ := newTestLogger(t, "NONE")

	l.Entry(TypeInfo, "dropped")
	l.Entry("CUSTOM1", "kept")

	lines := readLines(t, l)
	require.Len(t, lines, 1)
	assert.Equal(t, "CUSTOM1", lineType(lines[0]))
	assert.True(t, strings.HasSuffix(lines[0], "] kept"))
}

func TestEntry_ShortFormsMatchCanonical(t *testing.T) {
	pairs := map[EntryType]EntryType{
		"err": TypeError, "E": TypeError,
		"inf": TypeInfo, "i": TypeInfo,
		"Warn": TypeWarning, "w": TypeWarning,
		"crit": TypeCritical, "C": TypeCritical,
		"dbg": TypeDebug, "d": TypeDebug,
	}
	for short, full := range pairs {
		for _, profile := range []string{"DEFAULT", "PRODUCTIVE", "NONE"} {
			ls, _ := newTestLogger(t, profile)
			lf, _ := newTestLogger(t, profile)
			ls.Entry(short, "m")
			lf.Entry(full, "m")

			shortLines, fullLines := readLines(t, ls), readLines(t, lf)
			require.Len(t, shortLines, len(fullLines), "%s vs %s under %s", short, full, profile)
			for i := range shortLines {
				assert.Equal(t, lineType(fullLines[i]), lineType(shortLines[i]))
			}
		}
	}
}

func TestEntry_LineFormat(t *testing.T) {
	l, _ := newTestLogger(t, "DEBUG")
	l.Info("hello world")

	lines := readLines(t, l)
	require.Len(t, lines, 1)
	assert.Regexp(t, linePattern, lines[0])
	assert.True(t, strings.HasSuffix(lines[0], " [INFO] hello world"))
}

func TestEntry_FrozenClockAndCustomFormat(t *testing.T) {
	l, _ := newTestLogger(t, "DEBUG")
	l.now = func() time.Time { return time.Date(2024, time.March, 5, 14, 22, 1, 123e6, time.Local) }

	l.Debug("first")
	l.SetTimestampFormat(time.DateTime)
	l.Debug("second")
	l.SetTimestampFormat("")
	l.Entry("x", "")

	assert.Equal(t, []string{
		"[05-03-2024 14:22:01.123] [DEBUG] first",
		"[2024-03-05 14:22:01] [DEBUG] second",
		"[05-03-2024 14:22:01.123] [X] ",
	}, readLines(t, l))
}

func TestWrappers_UseCanonicalTypes(t *testing.T) {
	l, _ := newTestLogger(t, "DEBUG")

	l.Info("a")
	l.Warn("b")
	l.Error("c")
	l.Crit("d")
	l.Debug("e")
	l.Infof("%s", "f")
	l.Warnf("%s", "g")
	l.Errorf("%s", "h")
	l.Critf("%s", "i")
	l.Debugf("%s", "j")

	var types []string
	for _, line := range readLines(t, l) {
		types = append(types, lineType(line))
	}
	assert.Equal(t, []string{
		"INFO", "WARNING", "ERROR", "CRITICAL", "DEBUG",
		"INFO", "WARNING", "ERROR", "CRITICAL", "DEBUG",
	}, types)
}

func TestEntryKV(t *testing.T) {
	l, _ := newTestLogger(t, "")
	l.EntryKV("audit", "request completed", "status", 200, 42, "skipped", "path", "/api")

	lines := readLines(t, l)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "[AUDIT] request completed status=200 path=/api"), lines[0])
}

func TestAPI_StatusMapping(t *testing.T) {
	l, _ := newTestLogger(t, "DEBUG")

	l.API(200, "ok")
	l.API(301, "moved")
	l.API(404, "missing")
	l.API(503, "down")

	lines := readLines(t, l)
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[0], "[INFO] [200] ok"))
	assert.True(t, strings.HasSuffix(lines[1], "[INFO] [301] moved"))
	assert.True(t, strings.HasSuffix(lines[2], "[WARNING] [404] missing"))
	assert.True(t, strings.HasSuffix(lines[3], "[ERROR] [503] down"))
}

func TestEntry_IncludeCaller(t *testing.T) {
	var console bytes.Buffer
	l, err := New(Config{FileName: "c.log", FilePath: t.TempDir(), IncludeCaller: true, Console: &console})
	require.NoError(t, err)

	l.Info("tagged")
	l.Entryf("audit", "tagged %d", 2)

	lines := readLines(t, l)
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, "[logger.TestEntry_IncludeCaller:")
	}
}

func TestProfile_Normalized(t *testing.T) {
	l, _ := newTestLogger(t, "prod")
	assert.Equal(t, ProfileProductive, l.Profile())
	assert.Equal(t, TypeSet{TypeError, TypeInfo, TypeCritical}, l.AllowedTypes())

	l.SetProfile("dbg")
	assert.Equal(t, ProfileDebug, l.Profile())
	assert.True(t, l.AllowedTypes().Contains(TypeDebug))
}

func TestProfile_AllowedTypesIsACopy(t *testing.T) {
	l, _ := newTestLogger(t, "DEFAULT")
	types := l.AllowedTypes()
	types[0] = "MUTATED"

	assert.Equal(t, TypeError, l.AllowedTypes()[0])
	set, _ := ProfileTypes(ProfileDefault)
	assert.Equal(t, TypeError, set[0])
}

func TestProfile_UnknownFallsBackToDefault(t *testing.T) {
	var stderr bytes.Buffer
	old := outStderr
	defer func() { outStderr = old }()
	outStderr = &stderr

	l, _ := newTestLogger(t, "verbose")

	assert.Equal(t, ProfileDefault, l.Profile())
	assert.Contains(t, stderr.String(), `unknown profile "verbose"`)
}

func TestProfile_FromEnvironment(t *testing.T) {
	t.Setenv("LOGGER_PROFILE", "crit")

	l, _ := newTestLogger(t, "")
	assert.Equal(t, ProfileCritical, l.Profile())

	l2, _ := newTestLogger(t, "debug")
	assert.Equal(t, ProfileDebug, l2.Profile(), "explicit profile wins over the environment")
}

func TestConsole_PlainWhenNoColor(t *testing.T) {
	l, console := newTestLogger(t, "")
	l.Warn("careful")

	out := console.String()
	assert.NotContains(t, out, "\033[")
	assert.Regexp(t, linePattern, strings.TrimSuffix(out, lineEnding))
	assert.Contains(t, out, "[WARNING] careful")
}

func TestConsole_Disabled(t *testing.T) {
	l, console := newTestLogger(t, "")
	l.SetPrintToConsole(false)
	assert.False(t, l.PrintToConsole())

	l.Info("file only")

	assert.Empty(t, console.String())
	assert.Len(t, readLines(t, l), 1)
}

func TestConsole_ColorsPerType(t *testing.T) {
	l, console := newTestLogger(t, "DEBUG")
	l.console.r.SetColorProfile(ansiProfile)

	l.Info("i")
	l.Error("e")
	l.Entry("audit", "a")
	l.Entry("other", "o")

	out := console.String()
	tagColor := func(tag string) string {
		m := regexp.MustCompile(`\x1b\[([0-9;]+)m\[` + tag + `\]`).FindStringSubmatch(out)
		require.NotNil(t, m, "no colored %s tag in %q", tag, out)
		return m[1]
	}

	assert.NotEqual(t, tagColor("INFO"), tagColor("ERROR"))
	assert.NotEqual(t, tagColor("INFO"), tagColor("AUDIT"))
	assert.Equal(t, tagColor("AUDIT"), tagColor("OTHER"), "unmapped types share a color")
	assert.Contains(t, out, "\x1b[0m", "color state is reset")
}

func TestConsole_JournalPrefix(t *testing.T) {
	t.Setenv("JOURNAL_STREAM", "1:2")

	l, console := newTestLogger(t, "DEBUG")
	l.Info("to journal")
	l.Entry("audit", "custom")

	lines := strings.Split(strings.TrimSuffix(console.String(), lineEnding), lineEnding)
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "<6>["), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "["), lines[1])
}

func TestSyslogPrefixForTypes(t *testing.T) {
	cases := map[EntryType]string{
		TypeDebug:    "<7>",
		TypeInfo:     "<6>",
		TypeWarning:  "<4>",
		TypeError:    "<3>",
		TypeCritical: "<2>",
		"AUDIT":      "",
	}

	for typ, want := range cases {
		assert.Equal(t, want, syslogPrefixForType(typ), "type %s", typ)
	}
}

func TestDefaultLogger(t *testing.T) {
	defer SetDefault(nil)
	SetDefault(nil)

	assert.NotPanics(t, func() { Info("before init") })

	var console bytes.Buffer
	require.NoError(t, Init(Config{FileName: "default.log", FilePath: t.TempDir(), Profile: "PROD", Console: &console}))

	Info("i")
	Warn("dropped")
	Error("e")
	Crit("c")
	Debug("dropped")
	Entry("audit", "a")
	Infof("n=%d", 1)
	EntryKV("audit", "kv", "k", "v")
	API(500, "boom")

	var types []string
	for _, line := range readLines(t, Default()) {
		types = append(types, lineType(line))
	}
	assert.Equal(t, []string{"INFO", "ERROR", "CRITICAL", "AUDIT", "INFO", "AUDIT", "ERROR"}, types)
}

func TestInit_ErrorKeepsPreviousDefault(t *testing.T) {
	defer SetDefault(nil)
	l, _ := newTestLogger(t, "")
	SetDefault(l)

	require.ErrorIs(t, Init(Config{}), ErrNoFileName)
	assert.Same(t, l, Default())
}
