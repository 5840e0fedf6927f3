package audio

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"interview_warmup_backend/internal/util"

	"github.com/jfreymuth/pulse"
	pulseproto "github.com/jfreymuth/pulse/proto"
)

// Device 对外暴露的一个输入源
type Device struct {
	ID          string
	Description string
	Default     bool
	Available   bool
	Muted       bool
}

// ListDevices 枚举 Pulse 输入源
func ListDevices(_ context.Context) ([]Device, error) {
	client, err := pulse.NewClient(
		pulse.ClientApplicationName("interview-warmup"),
		pulse.ClientApplicationIconName("audio-input-microphone"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrDeviceUnavailable, err)
	}
	defer client.Close()

	defaultSource, err := client.DefaultSource()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrDeviceUnavailable, err)
	}
	defaultID := defaultSource.ID()

	var sourceInfos pulseproto.GetSourceInfoListReply
	if err := client.RawRequest(&pulseproto.GetSourceInfoList{}, &sourceInfos); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrDeviceUnavailable, err)
	}

	devices := make([]Device, 0, len(sourceInfos))
	for _, source := range sourceInfos {
		if source == nil {
			continue
		}
		devices = append(devices, Device{
			ID:          source.SourceName,
			Description: source.Device,
			Default:     source.SourceName == defaultID,
			Available:   sourceAvailable(source),
			Muted:       source.Mute,
		})
	}
	return devices, nil
}

// SelectDevice 按配置的首选/备选名称解析实际采集设备
func SelectDevice(ctx context.Context, input string, fallback string) (Device, error) {
	devices, err := ListDevices(ctx)
	if err != nil {
		return Device{}, err
	}
	return selectFromList(devices, input, fallback)
}

func selectFromList(devices []Device, input string, fallback string) (Device, error) {
	if len(devices) == 0 {
		return Device{}, util.ErrDeviceUnavailable
	}

	input = strings.TrimSpace(strings.ToLower(input))
	fallback = strings.TrimSpace(strings.ToLower(fallback))

	find := func(term string) *Device {
		if term == "" || term == "default" {
			return nil
		}
		for i := range devices {
			dev := &devices[i]
			if strings.Contains(strings.ToLower(dev.ID), term) ||
				strings.Contains(strings.ToLower(dev.Description), term) {
				return dev
			}
		}
		return nil
	}
	byDefault := func() *Device {
		for i := range devices {
			if devices[i].Default {
				return &devices[i]
			}
		}
		return nil
	}

	primary := find(input)
	if primary == nil {
		primary = byDefault()
	}
	if primary == nil {
		return Device{}, util.ErrDeviceUnavailable
	}
	if primary.Available && !primary.Muted {
		return *primary, nil
	}

	// 首选不可用时尝试备选，再不行回落到默认源
	if alt := find(fallback); alt != nil && alt.Available && !alt.Muted {
		return *alt, nil
	}
	if def := byDefault(); def != nil && def.Available && !def.Muted && def.ID != primary.ID {
		return *def, nil
	}
	return Device{}, fmt.Errorf("%w: %q", util.ErrDeviceUnavailable, primary.ID)
}

// Recorder 单路 16kHz 单声道采集器。
// 同一时刻最多一段录音在进行，重复 Start 直接报忙。
type Recorder struct {
	Input    string
	Fallback string

	mu      sync.Mutex
	client  *pulse.Client
	stream  *pulse.RecordStream
	rawPCM  []byte
	device  Device
	running bool
}

func NewRecorder(input, fallback string) *Recorder {
	return &Recorder{Input: input, Fallback: fallback}
}

// Recording 是否正在录音
func (r *Recorder) Recording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Start 解析设备并打开采集流
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return util.ErrRecorderBusy
	}

	device, err := SelectDevice(ctx, r.Input, r.Fallback)
	if err != nil {
		return err
	}

	client, err := pulse.NewClient(
		pulse.ClientApplicationName("interview-warmup"),
		pulse.ClientApplicationIconName("audio-input-microphone"),
	)
	if err != nil {
		return mapPulseError(err)
	}

	source, err := client.SourceByID(device.ID)
	if err != nil {
		client.Close()
		return mapPulseError(err)
	}

	r.rawPCM = nil
	writer := pulse.NewWriter(writerFunc(r.onPCM), pulseproto.FormatInt16LE)
	stream, err := client.NewRecord(
		writer,
		pulse.RecordSource(source),
		pulse.RecordMono,
		pulse.RecordSampleRate(SampleRate),
		pulse.RecordMediaName("interview answer"),
	)
	if err != nil {
		client.Close()
		return mapPulseError(err)
	}

	r.client = client
	r.stream = stream
	r.device = device
	r.running = true
	stream.Start()
	return nil
}

// Stop 停止采集并返回封装好的 WAV 资产。
// 无论成功与否都会释放设备。
func (r *Recorder) Stop(_ context.Context) (Asset, error) {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return Asset{}, util.ErrRecorderIdle
	}
	// 先摘下流再关闭，避免与采集回调互锁
	stream := r.stream
	client := r.client
	r.stream = nil
	r.client = nil
	r.running = false
	r.mu.Unlock()

	if stream != nil {
		stream.Stop()
		stream.Close()
	}
	if client != nil {
		client.Close()
	}

	r.mu.Lock()
	pcm := r.rawPCM
	r.rawPCM = nil
	r.mu.Unlock()
	return NewWAVAsset(pcm), nil
}

// Device 返回当前或最近一次录音使用的设备
func (r *Recorder) Device() Device {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.device
}

func (r *Recorder) onPCM(buffer []byte) (int, error) {
	if len(buffer) == 0 {
		return 0, nil
	}
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return 0, io.EOF
	}
	r.rawPCM = append(r.rawPCM, buffer...)
	r.mu.Unlock()
	return len(buffer), nil
}

// mapPulseError 把 Pulse 连接/权限错误归类为稳定的哨兵错误
func mapPulseError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "access denied") || strings.Contains(msg, "permission") {
		return fmt.Errorf("%w: %v", util.ErrPermissionDenied, err)
	}
	return fmt.Errorf("%w: %v", util.ErrDeviceUnavailable, err)
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(b []byte) (int, error) {
	return f(b)
}

func sourceAvailable(source *pulseproto.GetSourceInfoReply) bool {
	if source == nil {
		return false
	}
	if len(source.Ports) == 0 {
		return true
	}
	for _, port := range source.Ports {
		if port.Name != source.ActivePortName {
			continue
		}
		// Pulse 取值：unknown=0, no=1, yes=2
		return port.Available == 0 || port.Available == 2
	}
	return true
}
