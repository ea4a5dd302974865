package domain

// WorkspaceInfo is the positional workspace tuple returned by the workspace
// service: [id, name, owner, moddate, max_objid, user_perm, global_perm,
// lockstat, metadata]. Only the owner, moddate, and metadata positions are
// interpreted here; everything else passes through opaquely.
type WorkspaceInfo []any

// Owner returns the workspace owner username, or "" when the tuple is too
// short or the slot is not a string.
func (w WorkspaceInfo) Owner() string {
	if len(w) < 3 {
		return ""
	}
	s, _ := w[2].(string)
	return s
}

// Moddate returns the last-saved timestamp text, or "" when absent.
func (w WorkspaceInfo) Moddate() string {
	if len(w) < 4 {
		return ""
	}
	s, _ := w[3].(string)
	return s
}

// Metadata returns the workspace metadata mapping, or an empty map when the
// tuple is short or the slot is malformed.
func (w WorkspaceInfo) Metadata() map[string]any {
	if len(w) < 9 {
		return map[string]any{}
	}
	m, ok := w[8].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return m
}

// NarrativeInfo is the legacy 5-tuple describing a narrative workspace:
// [narrative name, object id, last-saved epoch millis, owner username,
// owner display name].
type NarrativeInfo []any

// NewNarrativeInfo builds the tuple in its fixed positional order.
func NewNarrativeInfo(name string, objectID int, savedAt int64, owner, displayName string) NarrativeInfo {
	return NarrativeInfo{name, objectID, savedAt, owner, displayName}
}

// UserProfile is an opaque profile document from the user-profile service.
type UserProfile map[string]any

// Username returns the nested user.username field, or "".
func (p UserProfile) Username() string {
	return p.userField("username")
}

// Realname returns the nested user.realname display name, or "".
func (p UserProfile) Realname() string {
	return p.userField("realname")
}

func (p UserProfile) userField(key string) string {
	user, ok := p["user"].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := user[key].(string)
	return s
}
