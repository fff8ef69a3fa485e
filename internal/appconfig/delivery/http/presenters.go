package http

import (
	"time"

	"central-gpt/internal/appconfig"
	"central-gpt/pkg/keyrotation"
	"central-gpt/pkg/response"
)

// --- Request DTOs ---

type updateFlagsReq struct {
	MaintenanceMode *bool `json:"maintenance_mode"`
	FeatureVoice    *bool `json:"feature_voice"`
	FeatureImage    *bool `json:"feature_image"`
}

func (r updateFlagsReq) toInput() appconfig.UpdateFlagsInput {
	return appconfig.UpdateFlagsInput{
		MaintenanceMode: r.MaintenanceMode,
		FeatureVoice:    r.FeatureVoice,
		FeatureImage:    r.FeatureImage,
	}
}

type addKeyReq struct {
	Key string `json:"key" binding:"required"`
}

type deepseekKeyReq struct {
	Key string `json:"key"`
}

// --- Response DTOs ---

type flagsResp struct {
	MaintenanceMode bool `json:"maintenance_mode"`
	FeatureVoice    bool `json:"feature_voice"`
	FeatureImage    bool `json:"feature_image"`
}

func newFlagsResp(f appconfig.Flags) flagsResp {
	return flagsResp{
		MaintenanceMode: f.MaintenanceMode,
		FeatureVoice:    f.FeatureVoice,
		FeatureImage:    f.FeatureImage,
	}
}

type keyResp struct {
	Index  int    `json:"index"`
	Masked string `json:"masked"`
}

type adminResp struct {
	Flags          flagsResp         `json:"flags"`
	GeminiKeys     []keyResp         `json:"gemini_keys"`
	HasDeepseekKey bool              `json:"has_deepseek_key"`
	EnvFallbackKey bool              `json:"env_fallback_key"`
	UpdatedAt      response.DateTime `json:"updated_at"`
}

func newAdminResp(v appconfig.AdminView) adminResp {
	keys := make([]keyResp, len(v.GeminiKeys))
	for i, k := range v.GeminiKeys {
		keys[i] = keyResp{Index: k.Index, Masked: k.Masked}
	}
	return adminResp{
		Flags:          newFlagsResp(v.Flags),
		GeminiKeys:     keys,
		HasDeepseekKey: v.HasDeepseekKey,
		EnvFallbackKey: v.EnvFallbackKey,
		UpdatedAt:      response.DateTime(v.UpdatedAt),
	}
}

type statusResp struct {
	Initialized  bool    `json:"initialized"`
	KeyCount     int     `json:"key_count"`
	CurrentIndex int     `json:"current_index"`
	LastUsed     *string `json:"last_used,omitempty"`
}

func newStatusResp(s keyrotation.Status) statusResp {
	resp := statusResp{
		Initialized:  s.Initialized,
		KeyCount:     s.KeyCount,
		CurrentIndex: s.CurrentIndex,
	}
	if !s.LastUsed.IsZero() {
		ts := s.LastUsed.Format(time.RFC3339)
		resp.LastUsed = &ts
	}
	return resp
}
