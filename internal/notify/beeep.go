package notify

import "github.com/gen2brain/beeep"

const appName = "pomodesk"

// BeeepSound plays the completion sound through the system beeper.
type BeeepSound struct{}

func (BeeepSound) Play() error {
	return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}

type BeeepNotifier struct{}

func (BeeepNotifier) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

