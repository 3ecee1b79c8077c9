package service_test

import (
	"testing"
	"time"

	"github.com/hance08/bankist/internal/service"
)

func TestSession_ToggleSort(t *testing.T) {
	sess := &service.Session{}
	if !sess.ToggleSort() || !sess.Sorted {
		t.Error("first toggle should sort")
	}
	if sess.ToggleSort() || sess.Sorted {
		t.Error("second toggle should restore original order")
	}
}

func TestSession_Expired(t *testing.T) {
	sess := &service.Session{LastActivity: fixedNow}

	if sess.Expired(fixedNow.Add(4*time.Minute), 5*time.Minute) {
		t.Error("expired before idle timeout")
	}
	if !sess.Expired(fixedNow.Add(6*time.Minute), 5*time.Minute) {
		t.Error("not expired after idle timeout")
	}
	if sess.Expired(fixedNow.Add(24*time.Hour), 0) {
		t.Error("zero idle timeout should never expire")
	}

	sess.Touch(fixedNow.Add(6 * time.Minute))
	if sess.Expired(fixedNow.Add(7*time.Minute), 5*time.Minute) {
		t.Error("touch did not reset idle time")
	}
}

func TestSession_ActiveNilAndEnded(t *testing.T) {
	var none *service.Session
	if none.Active() {
		t.Error("nil session reported active")
	}

	sess := &service.Session{Owner: "Jessica Davis"}
	if sess.WelcomeName() != "Jessica" {
		t.Errorf("WelcomeName = %q", sess.WelcomeName())
	}
	sess.End()
	if sess.Active() {
		t.Error("ended session reported active")
	}
}
