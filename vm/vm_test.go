package vm

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAddThenHalt(t *testing.T) {
	assert := assert.New(t)

	// ADD R0, R0, #1 ; HALT
	machine, console := newTestVM(t, "", 0x1021, 0xF025)

	require.NoError(t, machine.Run(context.Background()))
	assert.Equal(Word(1), machine.Register(R0))
	assert.Equal(FLAG_POS, machine.Cond())
	assert.Equal(Halted, machine.State())
	assert.Equal(uint64(2), machine.Cycles())
	assert.Equal(Word(0x3002), machine.PC())
	assert.Equal("HALT\n", console.output.String())
}

func TestRunHelloWorld(t *testing.T) {
	machine, console := newTestVM(t, "",
		0xE002, // LEA R0, #2
		0xF022, // PUTS
		0xF025, // HALT
		'H', 'i', '\n', 0,
	)

	require.NoError(t, machine.Run(context.Background()))
	assert.Equal(t, "Hi\nHALT\n", console.output.String())
}

func TestRunEchoLoop(t *testing.T) {
	// copies input to output until a zero byte is read
	machine, console := newTestVM(t, "abc\x00",
		0xF020, // loop: GETC
		0x0402, //       BRz done
		0xF021, //       OUT
		0x0FFC, //       BRnzp loop
		0xF025, // done: HALT
	)

	require.NoError(t, machine.Run(context.Background()))
	assert.Equal(t, "abcHALT\n", console.output.String())
	assert.Equal(t, uint64(3*4+2+1), machine.Cycles())
}

func TestRunPollsKeyboard(t *testing.T) {
	assert := assert.New(t)

	machine, console := newTestVM(t, "!",
		0xA003, // poll: LDI R0, KBSRPTR
		0x07FE, //       BRzp poll
		0xA002, //       LDI R0, KBDRPTR
		0xF025, //       HALT
		KBSR,
		KBDR,
	)

	require.NoError(t, machine.Run(context.Background()))
	assert.Equal(Word('!'), machine.Register(R0))
	assert.Equal(1, console.polls)
	assert.Equal(Halted, machine.State())
}

func TestRunCancelledBeforeStart(t *testing.T) {
	assert := assert.New(t)

	machine, _ := newTestVM(t, "", 0x1021, 0xF025)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(machine.Run(ctx), context.Canceled)
	assert.Equal(Running, machine.State())
	assert.Equal(uint64(0), machine.Cycles())
	assert.Equal(Word(0x3000), machine.PC())

	// the machine can be resumed
	require.NoError(t, machine.Run(context.Background()))
	assert.Equal(Word(1), machine.Register(R0))
}

func TestRunFault(t *testing.T) {
	assert := assert.New(t)

	// ADD R0, R0, #1 ; RTI
	machine, _ := newTestVM(t, "", 0x1021, 0x8000)

	err := machine.Run(context.Background())
	assert.ErrorIs(err, ErrIllegalOpcode)
	assert.Contains(err.Error(), "RTI (0x8000) at 0x3001")
	assert.Equal(Faulted, machine.State())
	assert.Equal(uint64(1), machine.Cycles())
	assert.Equal(Word(0x3001), machine.PC())
}

func TestReset(t *testing.T) {
	assert := assert.New(t)

	machine, _ := newTestVM(t, "", 0x1021, 0xF025)
	require.NoError(t, machine.Run(context.Background()))

	machine.Reset()
	assert.Equal(Running, machine.State())
	assert.Equal(Word(UserSpaceStart), machine.PC())
	assert.Equal(FLAG_ZRO, machine.Cond())
	assert.Equal(Word(0), machine.Register(R0))
	assert.Equal(uint64(0), machine.Cycles())
	assert.Equal(Word(0x1021), machine.Memory().Read(0x3000))
}

func TestStateString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("running", Running.String())
	assert.Equal("halted", Halted.String())
	assert.Equal("faulted", Faulted.String())
	assert.Equal("State(9)", State(9).String())
}

func TestTraceLogging(t *testing.T) {
	assert := assert.New(t)

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	machine := New(&fakeConsole{}, WithLogger(logger))
	machine.Memory().Load(UserSpaceStart, []Word{0x1065, 0xF025})

	require.NoError(t, machine.Run(context.Background()))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal("execute", entries[0].Message)
	assert.Equal("ADD", entries[0].Data["op"])
	assert.Equal("0x3000", entries[0].Data["pc"])
	assert.Equal(R0, entries[0].Data["dr"])
	assert.Equal(int16(5), entries[0].Data["imm5"])
	assert.Equal("TRAP", entries[1].Data["op"])
	assert.Equal("0x25", entries[1].Data["vector"])
}

func TestTraceLoggingDisabled(t *testing.T) {
	logger, hook := test.NewNullLogger()

	machine := New(nil, WithLogger(logger))
	machine.Memory().Load(UserSpaceStart, []Word{0x1021, 0xF025})

	require.NoError(t, machine.Run(context.Background()))
	assert.Empty(t, hook.AllEntries())
}
