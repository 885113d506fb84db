package lsp

import "encoding/json"

func (s *Server) handleDidChangeConfiguration(msg *rpcMessage) error {
	if len(msg.Params) == 0 {
		return nil
	}
	var params didChangeConfigurationParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return nil
	}
	if s.applySettings(params.Settings) {
		s.scheduleDiagnostics()
	}
	return nil
}

// applySettings reports whether linting was toggled.
func (s *Server) applySettings(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var settings lspSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if settings.Tagwise.LSP.Trace != nil {
		s.traceLSP = *settings.Tagwise.LSP.Trace
	}
	if v := settings.Tagwise.Lint.Enabled; v != nil && *v != s.lintEnabled {
		s.lintEnabled = *v && s.validator != nil
		return true
	}
	return false
}
