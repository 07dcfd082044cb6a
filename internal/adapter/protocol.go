package adapter

import (
	"strconv"
	"strings"
)

// Lightpack API wire vocabulary.
const (
	bannerMarker = "Lightpack API"

	cmdAPIKey        = "apikey:"
	cmdLock          = "lock"
	cmdUnlock        = "unlock"
	cmdGetProfiles   = "getprofiles"
	cmdGetStatus     = "getstatus"
	cmdGetStatusAPI  = "getstatusapi"
	cmdSetBrightness = "setbrightness:"
	cmdSetProfile    = "setprofile:"

	replyOK            = "ok"
	replyLockSuccess   = "lock:success"
	replyUnlockSuccess = "unlock:success"
	replyUnlockNot     = "unlock:not"
	replyStatusAPI     = "statusapi:"
	replyStatusAPIIdle = "statusapi:idle"

	prefixProfiles = "profiles:"
	prefixProfile  = "profile:"
	prefixStatus   = "status:"

	profileSeparator = ";"
)

func apiKeyCommand(key string) string {
	return cmdAPIKey + key
}

func setBrightnessCommand(level int) string {
	return cmdSetBrightness + strconv.Itoa(level)
}

func setProfileCommand(name string) string {
	return cmdSetProfile + name
}

// setStatusCommand reuses `setprofile:` with "on"/"off". Prismatik has a
// dedicated `setstatus:` command, but this is what the device has been
// driven with so far and it is kept until the reply format is confirmed.
func setStatusCommand(on bool) string {
	if on {
		return cmdSetProfile + "on"
	}
	return cmdSetProfile + "off"
}

// trimLine strips the line terminator left by the line reader.
func trimLine(line string) string {
	return strings.TrimRight(line, "\r\n")
}

// parseProfiles removes every "profiles:" occurrence and splits the rest on
// ";". A trailing separator yields a trailing empty name.
func parseProfiles(reply string) []string {
	return strings.Split(strings.ReplaceAll(reply, prefixProfiles, ""), profileSeparator)
}

// parseProfile removes every "profile:" occurrence.
func parseProfile(reply string) string {
	return strings.ReplaceAll(reply, prefixProfile, "")
}

// parseStatus removes every "status:" occurrence.
func parseStatus(reply string) string {
	return strings.ReplaceAll(reply, prefixStatus, "")
}

func isUnlocked(reply string) bool {
	return strings.Contains(reply, replyUnlockSuccess) || strings.Contains(reply, replyUnlockNot)
}
