package engine

import (
	"context"
	"errors"
)

// SaveSlotMeta is simulated save-slot metadata. Real game state lives in the
// game's own origin and cannot be captured; only the timestamp is kept.
type SaveSlotMeta struct {
	SavedAt int64 `json:"savedAt"` // unix milliseconds
}

// saveSlots maps game id -> slot name -> metadata.
type saveSlots map[string]map[string]SaveSlotMeta

// WriteSaveSlot stamps a save slot for a game.
func (s *Service) WriteSaveSlot(ctx context.Context, gameID, slot string) error {
	if gameID == "" || slot == "" {
		return errors.New("game id and slot are required")
	}
	key, err := s.activeKey(ctx, keySaveSlots)
	if err != nil {
		return err
	}
	slots, err := readJSON[saveSlots](ctx, s.store, key)
	if err != nil {
		return err
	}
	if slots == nil {
		slots = saveSlots{}
	}
	if slots[gameID] == nil {
		slots[gameID] = map[string]SaveSlotMeta{}
	}
	slots[gameID][slot] = SaveSlotMeta{SavedAt: s.now().UnixMilli()}
	return writeJSON(ctx, s.store, key, slots)
}

// ReadSaveSlot returns a slot's metadata and whether it exists.
func (s *Service) ReadSaveSlot(ctx context.Context, gameID, slot string) (SaveSlotMeta, bool, error) {
	key, err := s.activeKey(ctx, keySaveSlots)
	if err != nil {
		return SaveSlotMeta{}, false, err
	}
	slots, err := readJSON[saveSlots](ctx, s.store, key)
	if err != nil {
		return SaveSlotMeta{}, false, err
	}
	meta, ok := slots[gameID][slot]
	return meta, ok, nil
}
