package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/flashcards/internal/config"
)

var _ = Describe("Config", func() {
	Context("parsing arguments", func() {
		DescribeTable("flags",
			func(args []string, expected config.Options) {
				Expect(config.Parse(args)).To(Equal(expected))
			},
			Entry("no args", []string{}, config.Options{}),
			Entry("import only", []string{"-import", "in.txt"},
				config.Options{ImportPath: "in.txt"}),
			Entry("both in any order", []string{"-export", "out.txt", "-import", "in.txt"},
				config.Options{ImportPath: "in.txt", ExportPath: "out.txt"}),
			Entry("unknown flags are skipped", []string{"-foo", "-import", "in.txt", "bar"},
				config.Options{ImportPath: "in.txt"}),
			Entry("dangling value flag", []string{"-export"},
				config.Options{}),
			Entry("switches", []string{"-verbose", "-debug", "-version"},
				config.Options{Verbose: true, Debug: true, ShowVersion: true}),
			Entry("value that looks like a flag", []string{"-import", "-export"},
				config.Options{ImportPath: "-export"}),
		)
	})

	Context("loading a config file", func() {
		var tempDir string

		BeforeEach(func() {
			tempDir = GinkgoT().TempDir()
		})

		It("should read yaml fields and default the log file", func() {
			path := filepath.Join(tempDir, "flashcards.yaml")
			Expect(os.WriteFile(path, []byte("import_path: deck.txt\nverbose: true\n"), 0644)).To(Succeed())

			cfg, err := config.Load(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.ImportPath).To(Equal("deck.txt"))
			Expect(cfg.Verbose).To(BeTrue())
			Expect(cfg.LogFile).To(Equal("flashcards.log"))
		})

		It("should fail on invalid yaml", func() {
			path := filepath.Join(tempDir, "bad.yaml")
			Expect(os.WriteFile(path, []byte("import_path: [unclosed"), 0644)).To(Succeed())

			_, err := config.Load(path)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("resolving", func() {
		It("should let flags override the file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "c.yaml")
			Expect(os.WriteFile(path, []byte("import_path: a.txt\nexport_path: b.txt\n"), 0644)).To(Succeed())

			cfg, err := config.Resolve(config.Options{ConfigPath: path, ExportPath: "c.txt", Verbose: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.ImportPath).To(Equal("a.txt"))
			Expect(cfg.ExportPath).To(Equal("c.txt"))
			Expect(cfg.Verbose).To(BeTrue())
		})

		It("should fail when an explicit config file is missing", func() {
			_, err := config.Resolve(config.Options{ConfigPath: filepath.Join(GinkgoT().TempDir(), "none.yaml")})
			Expect(err).To(HaveOccurred())
		})

		It("should fall back to defaults without a config file", func() {
			wd, err := os.Getwd()
			Expect(err).NotTo(HaveOccurred())
			Expect(os.Chdir(GinkgoT().TempDir())).To(Succeed())
			DeferCleanup(os.Chdir, wd)

			cfg, err := config.Resolve(config.Options{ImportPath: "x.txt"})
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.ImportPath).To(Equal("x.txt"))
			Expect(cfg.LogFile).To(Equal("flashcards.log"))
		})
	})
})
