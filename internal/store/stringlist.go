package store

import (
    "encoding/json"
    "errors"
    "os"
    "path/filepath"
    "sort"
    "strings"
)

// List is a JSON string array persisted at Path.
// Entries are normalized, deduplicated and sorted on every read and write.
type List struct {
    Path string
    // Normalize maps an entry to its stored form. Nil only trims space.
    Normalize func(string) (string, error)
}

// AbsPath normalizes entries to clean absolute file paths.
func AbsPath(s string) (string, error) {
    return filepath.Abs(filepath.Clean(s))
}

func (l List) normalize(in []string) ([]string, error) {
    m := map[string]struct{}{}
    for _, s := range in {
        s = strings.TrimSpace(s)
        if s == "" {
            continue
        }
        if l.Normalize != nil {
            n, err := l.Normalize(s)
            if err != nil {
                return nil, err
            }
            s = n
        }
        m[s] = struct{}{}
    }
    out := make([]string, 0, len(m))
    for k := range m {
        out = append(out, k)
    }
    sort.Strings(out)
    return out, nil
}

// Load reads the list. A missing file yields an empty list without error.
func (l List) Load() ([]string, error) {
    b, err := os.ReadFile(l.Path)
    if err != nil {
        if os.IsNotExist(err) {
            return []string{}, nil
        }
        return nil, err
    }
    var arr []string
    if err := json.Unmarshal(b, &arr); err != nil {
        return nil, err
    }
    return l.normalize(arr)
}

// Save writes the list, creating parent dirs.
func (l List) Save(items []string) error {
    if strings.TrimSpace(l.Path) == "" {
        return errors.New("empty path")
    }
    arr, err := l.normalize(items)
    if err != nil {
        return err
    }
    if err := os.MkdirAll(filepath.Dir(l.Path), 0o755); err != nil {
        return err
    }
    b, err := json.MarshalIndent(arr, "", "  ")
    if err != nil {
        return err
    }
    return os.WriteFile(l.Path, b, 0o644)
}

// Add stores items and reports which were new and which already existed.
func (l List) Add(items []string) (added []string, existed []string, err error) {
    cur, err := l.Load()
    if err != nil {
        return nil, nil, err
    }
    in, err := l.normalize(items)
    if err != nil {
        return nil, nil, err
    }
    set := map[string]bool{}
    for _, s := range cur {
        set[s] = true
    }
    for _, s := range in {
        if set[s] {
            existed = append(existed, s)
        } else {
            set[s] = true
            added = append(added, s)
        }
    }
    if err := l.Save(keys(set)); err != nil {
        return nil, nil, err
    }
    return added, existed, nil
}

// Remove drops items and reports which were removed and which were missing.
func (l List) Remove(items []string) (removed []string, missing []string, err error) {
    cur, err := l.Load()
    if err != nil {
        return nil, nil, err
    }
    in, err := l.normalize(items)
    if err != nil {
        return nil, nil, err
    }
    set := map[string]bool{}
    for _, s := range cur {
        set[s] = true
    }
    for _, s := range in {
        if set[s] {
            delete(set, s)
            removed = append(removed, s)
        } else {
            missing = append(missing, s)
        }
    }
    if err := l.Save(keys(set)); err != nil {
        return nil, nil, err
    }
    return removed, missing, nil
}

func keys(set map[string]bool) []string {
    out := make([]string, 0, len(set))
    for k := range set {
        out = append(out, k)
    }
    return out
}
