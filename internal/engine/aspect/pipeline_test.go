package aspect_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/core/ports/mocks"
	"go.trai.ch/anvil/internal/engine/aspect"
	"go.uber.org/mock/gomock"
)

// recordingTask writes fixed output and optionally fails.
type recordingTask struct {
	id        string
	inits     int
	validated int
	stdout    string
	stderr    string
	err       error
	validate  error
}

func (r *recordingTask) Init(_ *domain.Context, _ string) error { r.inits++; return nil }
func (r *recordingTask) Validate() error                        { r.validated++; return r.validate }
func (r *recordingTask) Execute(_ context.Context, stdout, stderr io.Writer) error {
	_, _ = io.WriteString(stdout, r.stdout)
	_, _ = io.WriteString(stderr, r.stderr)
	return r.err
}

// handlerTask additionally receives its own output.
type handlerTask struct {
	recordingTask
	out  []string
	errs []string
}

func (h *handlerTask) HandleOutputLine(line string) { h.out = append(h.out, line) }
func (h *handlerTask) HandleErrorLine(line string)  { h.errs = append(h.errs, line) }

// collector is a plain output sink.
type collector struct {
	out  []string
	errs []string
}

func (c *collector) HandleOutputLine(line string) { c.out = append(c.out, line) }
func (c *collector) HandleErrorLine(line string)  { c.errs = append(c.errs, line) }

func TestPipeline_ZeroAspects(t *testing.T) {
	p := aspect.New()
	task := &recordingTask{stdout: "one\ntwo\npartial", stderr: "warn\n"}

	c, err := p.Create(func() (ports.Component, error) { return task, nil }, domain.NewElement("echo"), domain.NewContext(nil), "echo")
	require.NoError(t, err)
	assert.Same(t, task, c)
	assert.Equal(t, 1, task.inits)
	assert.Equal(t, 1, task.validated)

	sink := &collector{}
	require.NoError(t, p.Execute(t.Context(), task, domain.NewElement("echo"), sink))
	assert.Equal(t, []string{"one", "two", "partial"}, sink.out)
	assert.Equal(t, []string{"warn"}, sink.errs)
}

func TestPipeline_PreCreateReplacementWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockAspect(ctrl)
	second := mocks.NewMockAspect(ctrl)

	replacement := &recordingTask{id: "replacement"}
	factoryCalled := false

	first.EXPECT().PreCreate(nil, gomock.Any()).Return(replacement)
	second.EXPECT().PreCreate(replacement, gomock.Any()).Return(nil)
	first.EXPECT().PostCreate(replacement, gomock.Any()).Return(nil)
	second.EXPECT().PostCreate(replacement, gomock.Any()).Return(nil)

	p := aspect.New()
	p.Add("first", first)
	p.Add("second", second)

	c, err := p.Create(func() (ports.Component, error) {
		factoryCalled = true
		return &recordingTask{id: "factory"}, nil
	}, domain.NewElement("echo"), domain.NewContext(nil), "echo")
	require.NoError(t, err)

	assert.False(t, factoryCalled)
	assert.Same(t, replacement, c)
	assert.Equal(t, 1, replacement.validated)
}

func TestPipeline_PostCreateMaySubstitute(t *testing.T) {
	substitute := &recordingTask{id: "sub"}
	p := aspect.New()
	p.Add("x", &aspect.Funcs{
		PostCreateFunc: func(ports.Component, ports.ElementView) ports.Component { return substitute },
	})

	c, err := p.Create(func() (ports.Component, error) { return &recordingTask{}, nil },
		domain.NewElement("echo"), domain.NewContext(nil), "echo")
	require.NoError(t, err)
	assert.Same(t, substitute, c)
}

func TestPipeline_Create_ValidationFailure(t *testing.T) {
	p := aspect.New()
	task := &recordingTask{validate: errors.New("message is required")}

	_, err := p.Create(func() (ports.Component, error) { return task, nil },
		domain.NewElement("echo"), domain.NewContext(nil), "echo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidationFailed))
	assert.ErrorContains(t, err, "message is required")
}

func TestPipeline_Create_UnsupportedAttribute(t *testing.T) {
	p := aspect.New()
	el := domain.NewElement("echo")
	el.SetAttribute("message", "hi")

	_, err := p.Create(func() (ports.Component, error) { return &recordingTask{}, nil },
		el, domain.NewContext(nil), "echo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedAttribute))
}

func TestPipeline_Create_Configurable(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := mocks.NewMockConfigurable(ctrl)
	el := domain.NewElement("echo")
	el.SetAttribute("message", "hi")
	ctx := domain.NewContext(nil)

	cfg.EXPECT().Configure(el, ctx).Return(nil)

	component := &configurableTask{Configurable: cfg}
	p := aspect.New()
	_, err := p.Create(func() (ports.Component, error) { return component, nil }, el, ctx, "echo")
	require.NoError(t, err)
}

type configurableTask struct {
	recordingTask
	ports.Configurable
}

func TestPipeline_PostExecuteReverseOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mocks.NewMockAspect(ctrl)
	b := mocks.NewMockAspect(ctrl)
	c := mocks.NewMockAspect(ctrl)

	task := &recordingTask{err: errors.New("boom")}

	preA := a.EXPECT().PreExecute(gomock.Any(), task, gomock.Any()).Return("scope-a")
	preB := b.EXPECT().PreExecute(gomock.Any(), task, gomock.Any()).Return(nil).After(preA)
	preC := c.EXPECT().PreExecute(gomock.Any(), task, gomock.Any()).Return("scope-c").After(preB)

	replaced := errors.New("replaced")
	postC := c.EXPECT().PostExecute(gomock.Any(), "scope-c", task.err).Return(replaced).After(preC)
	a.EXPECT().PostExecute(gomock.Any(), "scope-a", replaced).Return(nil).After(postC)

	p := aspect.New()
	p.Add("a", a)
	p.Add("b", b)
	p.Add("c", c)

	err := p.Execute(t.Context(), task, domain.NewElement("fail"), nil)
	assert.NoError(t, err)
}

func TestPipeline_ScopedValues(t *testing.T) {
	el := domain.NewElement("echo")
	el.SetNamespaceAttribute("trace", "label", "c")
	el.SetNamespaceAttribute("audit", "owner", "ci")

	var got map[string]string
	p := aspect.New()
	p.Add("trace", &aspect.Funcs{
		PreExecuteFunc: func(_ context.Context, _ ports.Task, scoped map[string]string) any {
			got = scoped
			return nil
		},
	})

	require.NoError(t, p.Execute(t.Context(), &recordingTask{}, el, nil))
	assert.Equal(t, map[string]string{"label": "c"}, got)
}

func TestPipeline_OutputChain(t *testing.T) {
	p := aspect.New()
	p.Add("upper", &aspect.Funcs{
		TaskOutputFunc: func(_ any, line string) (string, bool) { return "[" + line + "]", true },
	})
	p.Add("filter", &aspect.Funcs{
		TaskOutputFunc: func(_ any, line string) (string, bool) { return line, line != "[secret]" },
		TaskErrorFunc:  func(_ any, line string) (string, bool) { return "E:" + line, true },
	})
	p.Add("silent", &aspect.Funcs{
		TaskOutputFunc: func(_ any, line string) (string, bool) { return line + "!", true },
		PreExecuteFunc: func(context.Context, ports.Task, map[string]string) any { return nil },
	})

	task := &handlerTask{recordingTask: recordingTask{stdout: "hello\nsecret\n", stderr: "oops"}}
	sink := &collector{}

	require.NoError(t, p.Execute(t.Context(), task, domain.NewElement("echo"), sink))
	assert.Equal(t, []string{"[hello]"}, task.out)
	assert.Equal(t, []string{"E:oops"}, task.errs)
	assert.Empty(t, sink.out)
	assert.Empty(t, sink.errs)
}

func TestContinueOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn("continuing after task failure: boom").Times(1)

	p := aspect.New()
	p.Add("", aspect.ContinueOnError(logger))

	err := p.Execute(t.Context(), &recordingTask{err: errors.New("boom")}, domain.NewElement("fail"), nil)
	assert.NoError(t, err)

	require.NoError(t, p.Execute(t.Context(), &recordingTask{}, domain.NewElement("echo"), nil))
}
