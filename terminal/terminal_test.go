package terminal

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestRawSettings(t *testing.T) {
	orig := unix.Termios{
		Iflag: unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON,
		Oflag: unix.OPOST,
		Lflag: unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG,
	}
	orig.Cc[unix.VMIN] = 1
	orig.Cc[unix.VTIME] = 0

	raw := rawSettings(orig)

	if raw.Iflag&(unix.BRKINT|unix.ICRNL|unix.INPCK|unix.ISTRIP|unix.IXON) != 0 {
		t.Errorf("input flags not cleared: %#x", raw.Iflag)
	}
	if raw.Oflag&unix.OPOST != 0 {
		t.Errorf("output post-processing not cleared: %#x", raw.Oflag)
	}
	if raw.Lflag&(unix.ECHO|unix.ICANON|unix.IEXTEN|unix.ISIG) != 0 {
		t.Errorf("local flags not cleared: %#x", raw.Lflag)
	}
	if raw.Cflag&unix.CS8 != unix.CS8 {
		t.Errorf("8-bit character size not set: %#x", raw.Cflag)
	}
	if raw.Cc[unix.VMIN] != 0 || raw.Cc[unix.VTIME] != 1 {
		t.Errorf("expected VMIN=0 VTIME=1, got VMIN=%d VTIME=%d",
			raw.Cc[unix.VMIN], raw.Cc[unix.VTIME])
	}
}

func TestRawSettingsLeavesSnapshotUntouched(t *testing.T) {
	// The captured snapshot is what Restore reapplies; deriving the
	// raw configuration must not mutate it.
	orig := unix.Termios{Lflag: unix.ECHO | unix.ICANON}
	orig.Cc[unix.VMIN] = 1

	rawSettings(orig)

	if orig.Lflag != unix.ECHO|unix.ICANON {
		t.Errorf("snapshot local flags changed: %#x", orig.Lflag)
	}
	if orig.Cc[unix.VMIN] != 1 {
		t.Errorf("snapshot VMIN changed: %d", orig.Cc[unix.VMIN])
	}
}
