package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is used similarly to *testing.T. It implements require.TestingT so that standard
// assertions from assert/require can be used, has a Run method for subtests, and can skip tests.
//
// Failing and skipping are implemented by panicking with the Context itself; the panic is
// recovered by the enclosing Run. This means FailNow and Skip must be called from the goroutine
// running the test, just like their *testing.T equivalents.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
	messages    []string
	started     time.Time
}

// Run executes action as the root of a test tree and returns the results of every test that
// was run or skipped inside it.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	c.started = time.Now()
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*Context); !ok || !c.skipped {
				c.failed = true
				var addError error
				if _, ok := r.(*Context); ok {
					if len(c.errors) == 0 {
						addError = errors.New("test failed with no failure message")
					}
				} else {
					addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
				}
				if addError != nil {
					c.errors = append(c.errors, addError)
					c.env.testLogger.TestError(c.id, addError)
				}
			}
		}
		if len(c.id.Path) == 0 && len(c.errors) == 0 {
			return
		}
		result := TestResult{
			TestID:     c.id,
			Errors:     c.errors,
			Messages:   c.messages,
			Skipped:    c.skipped,
			SkipReason: c.skipReason,
			Duration:   time.Since(c.started),
		}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs action as a subtest called name. Subtests excluded by the filter are reported as
// skipped without being run; the filter is consulted at every level of the tree, so it must
// accept the parents of any test it selects.
func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.Plus(name)

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		c.env.results.Tests = append(c.env.results.Tests,
			TestResult{TestID: id, Skipped: true, SkipReason: "excluded by filter parameters"})
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
	if c1.failed {
		c.failed = true
	}
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

// Helper exists so that testify treats Context like *testing.T; it does nothing.
func (c *Context) Helper() {}

func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) FailNow() {
	c.failed = true
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Infof records a message that is part of the test's visible output, as opposed to debug
// output which is only shown on request.
func (c *Context) Infof(message string, args ...interface{}) {
	m := fmt.Sprintf(message, args...)
	c.messages = append(c.messages, m)
	c.env.testLogger.TestInfo(c.id, m)
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

// reformatError strips the "Error Trace" block that testify adds to assertion failures, since
// the trace points into the assertion helpers rather than the test.
func reformatError(err error) error {
	s := strings.TrimPrefix(err.Error(), "\n")
	if !strings.Contains(s, "Error Trace:") {
		return err
	}
	var lines []string
	inTrace := false
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "Error Trace:"):
			inTrace = true
			continue
		case inTrace && strings.Contains(trimmed, ":") && !strings.HasPrefix(line, "\t     "):
			inTrace = false
		case inTrace:
			continue
		}
		lines = append(lines, strings.TrimPrefix(line, "\t"))
	}
	return errors.New(strings.Join(lines, "\n"))
}
