/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package main is the entry point for the FlowKit instance tool.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path"

	instmodel "github.com/asgardeo/flowkit/internal/instance/model"
	"github.com/asgardeo/flowkit/internal/instance/service"
	"github.com/asgardeo/flowkit/internal/system/config"
	"github.com/asgardeo/flowkit/internal/system/database/provider"
	"github.com/asgardeo/flowkit/internal/system/database/seeder"
	"github.com/asgardeo/flowkit/internal/system/error/serviceerror"
	"github.com/asgardeo/flowkit/internal/system/log"
)

const usage = `usage: flowkit <command> [arguments]

commands:
  init-db                               create the runtime schema and seed sample data
  list [spec-name]                      list instances, optionally by spec name
  dump <instance-id>                    print an instance document as JSON
  verify <instance-id>                  decode an instance document and report the graph
  patch <instance-id> <node-id> <json>  replace a task's data on a suspended instance
  suspend <instance-id>                 suspend an instance
  resume <instance-id>                  resume a suspended instance
  delete <instance-id>                  delete an instance`

func main() {
	logger := log.GetLogger()

	flowKitHome := getFlowKitHome(logger)
	initFlowKitConfigurations(logger, flowKitHome)

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	svc := service.NewInstanceService()

	var svcErr *serviceerror.ServiceError
	switch args[0] {
	case "init-db":
		initRuntimeDatabase(logger)
	case "list":
		svcErr = runList(svc, args[1:])
	case "dump":
		svcErr = runDump(svc, args[1:])
	case "verify":
		svcErr = runVerify(svc, args[1:])
	case "patch":
		svcErr = runPatch(svc, args[1:])
	case "suspend":
		svcErr = runStatusChange(svc, args[1:], instmodel.InstanceStatusSuspended)
	case "resume":
		svcErr = runStatusChange(svc, args[1:], instmodel.InstanceStatusActive)
	case "delete":
		svcErr = runDelete(svc, args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n%s\n", args[0], usage)
		os.Exit(2)
	}

	if svcErr != nil {
		logger.Fatal("Command failed", log.String("code", svcErr.Code),
			log.String("error", svcErr.Error),
			log.String("description", svcErr.ErrorDescription))
	}
}

// getFlowKitHome retrieves and returns the FlowKit home directory.
func getFlowKitHome(logger *log.Logger) string {
	flowKitHomeFlag := flag.String("flowkitHome", "", "Path to FlowKit home directory")
	flag.Parse()

	if *flowKitHomeFlag != "" {
		return *flowKitHomeFlag
	}

	dir, err := os.Getwd()
	if err != nil {
		logger.Fatal("Failed to get current working directory", log.Error(err))
	}
	return dir
}

// initFlowKitConfigurations loads the deployment configuration and initializes the runtime.
func initFlowKitConfigurations(logger *log.Logger, flowKitHome string) {
	configFilePath := path.Join(flowKitHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeFlowKitRuntime(flowKitHome, cfg); err != nil {
		logger.Fatal("Failed to initialize flowkit runtime", log.Error(err))
	}
}

// initRuntimeDatabase creates the runtime schema and seeds the sample instances.
func initRuntimeDatabase(logger *log.Logger) {
	seederProvider := seeder.NewSeederProvider(provider.NewDBProvider())
	dbSeeder, err := seederProvider.GetSeeder("runtime")
	if err != nil {
		logger.Fatal("Failed to get database seeder", log.Error(err))
	}

	if err := dbSeeder.EnsureSchema(); err != nil {
		logger.Fatal("Failed to create runtime schema", log.Error(err))
	}
	if err := dbSeeder.SeedInitialData(); err != nil {
		logger.Fatal("Failed to seed sample data", log.Error(err))
	}
	fmt.Println("runtime database initialized")
}

func runList(svc service.InstanceServiceInterface, args []string) *serviceerror.ServiceError {
	filters := map[string]interface{}{}
	if len(args) > 0 {
		filters["spec_name"] = args[0]
	}

	instances, svcErr := svc.ListInstances(filters)
	if svcErr != nil {
		return svcErr
	}

	for _, instance := range instances {
		fmt.Printf("%s\t%s\t%s\t%s\n", instance.ID, instance.Status,
			instance.SpecName, instance.SpecVersion)
	}
	return nil
}

func runDump(svc service.InstanceServiceInterface, args []string) *serviceerror.ServiceError {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	instance, svcErr := svc.GetInstance(args[0])
	if svcErr != nil {
		return svcErr
	}

	blob, err := json.MarshalIndent(instance.Document, "", "  ")
	if err != nil {
		svcErr := serviceerror.CustomServiceError(serviceerror.ServiceError{
			Type:  serviceerror.ServerErrorType,
			Code:  "FKI-5001",
			Error: "Internal server error",
		}, err.Error())
		return &svcErr
	}
	fmt.Println(string(blob))
	return nil
}

func runVerify(svc service.InstanceServiceInterface, args []string) *serviceerror.ServiceError {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	spec, runtime, svcErr := svc.LoadWorkflow(args[0])
	if svcErr != nil {
		return svcErr
	}

	fmt.Printf("spec: %s (version %s)\n", spec.Name, spec.Version)
	fmt.Printf("start node: %s\n", spec.StartNodeID)
	fmt.Printf("nodes: %d, task entries: %d\n", spec.Size(), len(runtime))
	for _, node := range spec.Nodes() {
		fmt.Printf("  %s\t%s\n", node.GetID(), node.GetKind())
	}
	return nil
}

func runPatch(svc service.InstanceServiceInterface, args []string) *serviceerror.ServiceError {
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(args[2]), &data); err != nil {
		fmt.Fprintf(os.Stderr, "invalid task data: %v\n", err)
		os.Exit(2)
	}

	return svc.PatchTaskData(args[0], args[1], data)
}

func runStatusChange(svc service.InstanceServiceInterface, args []string,
	status instmodel.InstanceStatus) *serviceerror.ServiceError {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	return svc.UpdateInstanceStatus(args[0], status)
}

func runDelete(svc service.InstanceServiceInterface, args []string) *serviceerror.ServiceError {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	return svc.DeleteInstance(args[0])
}
