package audio

import (
	"context"
	"encoding/binary"
	"testing"

	"interview_warmup_backend/internal/util"

	"github.com/stretchr/testify/require"
)

func TestEncodePCM16WAVHeader(t *testing.T) {
	pcm := make([]byte, 3200) // 100ms @ 16kHz mono s16
	out := EncodePCM16WAV(pcm, 16000, 1)

	require.Len(t, out, 44+len(pcm))
	require.Equal(t, "RIFF", string(out[0:4]))
	require.Equal(t, "WAVE", string(out[8:12]))
	require.Equal(t, "fmt ", string(out[12:16]))
	require.Equal(t, "data", string(out[36:40]))

	require.Equal(t, uint32(36+len(pcm)), binary.LittleEndian.Uint32(out[4:8]))
	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(out[20:22]))
	require.Equal(t, uint16(1), binary.LittleEndian.Uint16(out[22:24]))
	require.Equal(t, uint32(16000), binary.LittleEndian.Uint32(out[24:28]))
	require.Equal(t, uint32(32000), binary.LittleEndian.Uint32(out[28:32]))
	require.Equal(t, uint16(16), binary.LittleEndian.Uint16(out[34:36]))
	require.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(out[40:44]))
}

func TestNewWAVAssetEmpty(t *testing.T) {
	asset := NewWAVAsset(nil)
	require.True(t, asset.Empty())
	require.Equal(t, WAVMediaType, asset.MediaType)

	withData := NewWAVAsset(make([]byte, 320))
	require.False(t, withData.Empty())
}

func TestAssetFilename(t *testing.T) {
	asset := NewWAVAsset(nil)
	require.Contains(t, asset.Filename(), asset.ID.String())
	require.Contains(t, asset.Filename(), ".wav")
}

func TestSelectFromListPrefersInputMatch(t *testing.T) {
	devices := []Device{
		{ID: "alsa_input.usb_headset", Description: "USB Headset", Available: true},
		{ID: "alsa_input.builtin", Description: "Built-in Mic", Default: true, Available: true},
	}

	dev, err := selectFromList(devices, "headset", "")
	require.NoError(t, err)
	require.Equal(t, "alsa_input.usb_headset", dev.ID)
}

func TestSelectFromListFallsBackToDefault(t *testing.T) {
	devices := []Device{
		{ID: "alsa_input.usb_headset", Description: "USB Headset", Available: false},
		{ID: "alsa_input.builtin", Description: "Built-in Mic", Default: true, Available: true},
	}

	dev, err := selectFromList(devices, "headset", "")
	require.NoError(t, err)
	require.Equal(t, "alsa_input.builtin", dev.ID)
}

func TestSelectFromListUsesFallbackBeforeDefault(t *testing.T) {
	devices := []Device{
		{ID: "alsa_input.usb_headset", Description: "USB Headset", Muted: true, Available: true},
		{ID: "alsa_input.webcam", Description: "Webcam Mic", Available: true},
		{ID: "alsa_input.builtin", Description: "Built-in Mic", Default: true, Available: true},
	}

	dev, err := selectFromList(devices, "headset", "webcam")
	require.NoError(t, err)
	require.Equal(t, "alsa_input.webcam", dev.ID)
}

func TestSelectFromListNoDevices(t *testing.T) {
	_, err := selectFromList(nil, "", "")
	require.ErrorIs(t, err, util.ErrDeviceUnavailable)
}

func TestRecorderStopWhenIdle(t *testing.T) {
	rec := NewRecorder("", "")

	_, err := rec.Stop(context.Background())
	require.ErrorIs(t, err, util.ErrRecorderIdle)
	require.False(t, rec.Recording())
}
