package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openlearn/coursepack/internal/assemble"
	"github.com/openlearn/coursepack/internal/audit"
	"github.com/openlearn/coursepack/internal/course"
	"github.com/openlearn/coursepack/internal/report"
	"github.com/openlearn/coursepack/internal/store"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Regenerate a course package from its canonical spec and audit it",
	Long: `Rebuild reads the canonical course spec and a previously exported package,
rewrites every lesson's bibliography and read-more sections, regenerates the
question sets, and audits the candidate as a whole. On success three
artifacts are written: the regenerated package export, the full-course
rendering with answer key, and the bibliography digest. On any audit
failure the run aborts and nothing is written.`,
	RunE: runRebuild,
}

func init() {
	rebuildCmd.Flags().String("spec", "course.yaml", "Canonical course spec file")
	rebuildCmd.Flags().String("in", "package.json", "Previously exported package")
	rebuildCmd.Flags().String("out", "dist", "Output directory for the three artifacts")
	rebuildCmd.Flags().Bool("record", false, "Record the audit run in the database")
	_ = rebuildCmd.MarkFlagRequired("spec")
	_ = rebuildCmd.MarkFlagRequired("in")
}

func runRebuild(cmd *cobra.Command, args []string) error {
	specPath, _ := cmd.Flags().GetString("spec")
	inPath, _ := cmd.Flags().GetString("in")
	outDir, _ := cmd.Flags().GetString("out")
	record, _ := cmd.Flags().GetBool("record")

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID))

	spec, err := assemble.LoadSpec(specPath)
	if err != nil {
		return err
	}
	prev, err := course.LoadPackage(inPath)
	if err != nil {
		return err
	}
	log.Info("inputs loaded",
		zap.String("spec", specPath),
		zap.Int("lessons", len(prev.Lessons)))

	asmCfg := assemble.DefaultConfig()
	candidate, err := assemble.NewAssembler(spec, asmCfg).Assemble(prev)
	if err != nil {
		log.Error("assembly failed", zap.Error(err))
		return fmt.Errorf("assemble: %w", err)
	}

	auditCfg := audit.DefaultConfig()
	auditCfg.LessonCount = spec.LessonCount
	auditCfg.QuestionsPerLesson = spec.QuestionsPerLesson
	auditCfg.MinSources = spec.MinSources
	auditCfg.BibliographyHeader = asmCfg.BibliographyHeader
	auditCfg.ReadMoreHeader = asmCfg.ReadMoreHeader

	auditErr := audit.Audit(candidate, auditCfg)
	if record {
		if err := recordAudit(cmd, runID, len(candidate.Lessons), auditErr); err != nil {
			log.Warn("recording audit event failed", zap.Error(err))
		}
	}
	if auditErr != nil {
		log.Error("audit rejected candidate", zap.Error(auditErr))
		return fmt.Errorf("audit: %w", auditErr)
	}
	log.Info("audit passed", zap.Int("lessons", len(candidate.Lessons)))

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	pkgPath := filepath.Join(outDir, "package.json")
	if err := course.SavePackage(pkgPath, candidate); err != nil {
		return err
	}

	coursePath := filepath.Join(outDir, "course.md")
	if err := os.WriteFile(coursePath, []byte(report.RenderCourse(candidate, spec.Title)), 0o644); err != nil {
		return fmt.Errorf("write course rendering: %w", err)
	}

	digest, err := report.RenderBibliographyDigest(candidate, spec.Title, asmCfg.BibliographyHeader, asmCfg.ReadMoreHeader)
	if err != nil {
		return fmt.Errorf("render bibliography digest: %w", err)
	}
	digestPath := filepath.Join(outDir, "bibliography.md")
	if err := os.WriteFile(digestPath, []byte(digest), 0o644); err != nil {
		return fmt.Errorf("write bibliography digest: %w", err)
	}

	log.Info("artifacts written",
		zap.String("package", pkgPath),
		zap.String("course", coursePath),
		zap.String("digest", digestPath))
	fmt.Printf("Rebuilt %d lessons into %s\n", len(candidate.Lessons), outDir)
	return nil
}

func recordAudit(cmd *cobra.Command, runID string, lessons int, auditErr error) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	data := store.AuditEventData{
		RunID:       runID,
		LessonCount: lessons,
		Passed:      auditErr == nil,
	}
	if auditErr != nil {
		data.Detail = auditErr.Error()
	}
	return st.Audits().AppendAuditEvent(context.Background(), data)
}
