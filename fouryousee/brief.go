package fouryousee

import (
	"sort"
	"strconv"
)

// The API wants full replacement bodies on PUT, but the bodies it accepts
// differ from the records it returns: nested objects are referenced by id.
// The brief projections below turn a fetched record into an update body.

// briefMedia keeps name, duration, category ids and schedule
func briefMedia(media Record) Record {
	return Record{
		"name":       media["name"],
		"duration":   media["durationInSeconds"],
		"categories": idList(media["categories"]),
		"schedule":   media["schedule"],
	}
}

// briefPlayer keeps the editable player fields with the group, the
// playlist of each weekday and the audio playlist reduced to ids
func briefPlayer(player Record) Record {
	audios := Record{}
	if slots, ok := player["audios"].(map[string]any); ok {
		if audio := idOf(slots["0"]); audio != nil {
			audios["0"] = audio
		}
	}

	return Record{
		"name":        player["name"],
		"description": player["description"],
		"group":       idOf(player["group"]),
		"platform":    player["platform"],
		"playlists":   weekdayIDs(player["playlists"]),
		"audios":      audios,
	}
}

// briefPlaylist keeps the editable playlist fields with the category
// reduced to its id
func briefPlaylist(playlist Record) Record {
	return Record{
		"name":          playlist["name"],
		"isSubPlaylist": playlist["isSubPlaylist"],
		"category":      idOf(playlist["category"]),
		"items":         playlist["items"],
		"sequence":      playlist["sequence"],
	}
}

// idOf returns the id of a nested object, nil when there is none
func idOf(v any) any {
	if obj, ok := v.(map[string]any); ok {
		return obj["id"]
	}
	return nil
}

func idList(v any) []any {
	items, _ := v.([]any)
	ids := make([]any, 0, len(items))
	for _, item := range items {
		if id := idOf(item); id != nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// weekdayIDs re-keys the weekday playlists "0".."6" in day order and keeps
// only their ids
func weekdayIDs(v any) Record {
	var slots []any
	switch days := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(days))
		for k := range days {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			a, errA := strconv.Atoi(keys[i])
			b, errB := strconv.Atoi(keys[j])
			if errA != nil || errB != nil {
				return keys[i] < keys[j]
			}
			return a < b
		})
		for _, k := range keys {
			slots = append(slots, days[k])
		}
	case []any:
		slots = days
	}

	ids := Record{}
	for i, slot := range slots {
		ids[strconv.Itoa(i)] = idOf(slot)
	}
	return ids
}
