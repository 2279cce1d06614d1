package store

import (
    "os"
    "path/filepath"
    "testing"
)

func TestList_SaveLoad_AddRemove(t *testing.T) {
    l := List{Path: filepath.Join(t.TempDir(), "sub", "list.json")}

    got, err := l.Load()
    if err != nil {
        t.Fatalf("Load error: %v", err)
    }
    if len(got) != 0 {
        t.Fatalf("expected empty list, got %v", got)
    }

    if err := l.Save([]string{"b", " a ", "a", ""}); err != nil {
        t.Fatalf("Save error: %v", err)
    }
    got, err = l.Load()
    if err != nil {
        t.Fatalf("Load error: %v", err)
    }
    if len(got) != 2 || got[0] != "a" || got[1] != "b" {
        t.Fatalf("unexpected list after save+load: %v", got)
    }

    added, existed, err := l.Add([]string{"c", "a", "c"})
    if err != nil {
        t.Fatalf("Add error: %v", err)
    }
    if len(added) != 1 || added[0] != "c" || len(existed) != 1 || existed[0] != "a" {
        t.Fatalf("unexpected added/existed: %v / %v", added, existed)
    }

    removed, missing, err := l.Remove([]string{"a", "zz"})
    if err != nil {
        t.Fatalf("Remove error: %v", err)
    }
    if len(removed) != 1 || removed[0] != "a" || len(missing) != 1 || missing[0] != "zz" {
        t.Fatalf("unexpected removed/missing: %v / %v", removed, missing)
    }

    final, err := l.Load()
    if err != nil {
        t.Fatalf("Load error: %v", err)
    }
    if len(final) != 2 || final[0] != "b" || final[1] != "c" {
        t.Fatalf("unexpected final list: %v", final)
    }
}

func TestList_AbsPathNormalization(t *testing.T) {
    dir := t.TempDir()
    l := List{Path: filepath.Join(dir, "watch.json"), Normalize: AbsPath}
    wd, _ := os.Getwd()
    added, _, err := l.Add([]string{"notes.txt", "./notes.txt", filepath.Join(wd, "x", "..", "notes.txt")})
    if err != nil {
        t.Fatalf("Add error: %v", err)
    }
    if len(added) != 1 || added[0] != filepath.Join(wd, "notes.txt") {
        t.Fatalf("expected one absolute entry, got %v", added)
    }
}

func TestList_SaveEmptyPath(t *testing.T) {
    if err := (List{}).Save([]string{"a"}); err == nil {
        t.Fatalf("expected error for empty path")
    }
}
